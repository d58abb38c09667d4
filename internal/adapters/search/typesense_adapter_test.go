package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

func TestProfileDocument(t *testing.T) {
	doc := ProfileDocument(entities.LabTestProfile{
		Name:     "LFT (Liver Function Tests)",
		Category: entities.CategoryBiochemistry,
		Keywords: []string{"lft", "liver function"},
		Parameters: []entities.ProfileParameter{
			{Name: "Total Bilirubin"},
			{Name: "SGOT (AST)"},
		},
	})

	assert.Equal(t, "profile-lft-liver-function-tests", doc["id"])
	assert.Equal(t, "profile", doc["type"])
	assert.Equal(t, []string{"lft", "liver function"}, doc["keywords"])
	assert.Equal(t, []string{"Total Bilirubin", "SGOT (AST)"}, doc["parameters"])
	assert.Equal(t, 2, doc["rank"])
}

func TestParameterDocument(t *testing.T) {
	doc := ParameterDocument(entities.LabTestParameter{
		Name:     "Haemoglobin (Female)",
		Unit:     "g/dL",
		RefRange: "12.0 - 15.0",
		Category: entities.CategoryHematology,
	})

	assert.Equal(t, "test-haemoglobin-female", doc["id"])
	assert.Equal(t, "g/dL", doc["unit"])
	assert.Equal(t, 1, doc["rank"])
}

func TestDocumentID_DistinguishesNearDuplicates(t *testing.T) {
	assert.NotEqual(t,
		documentID(entities.SearchResultKindTest, "Haemoglobin"),
		documentID(entities.SearchResultKindTest, "Haemoglobin (Female)"),
	)
	assert.Equal(t, "test-a-g-ratio", documentID(entities.SearchResultKindTest, "A/G Ratio"))
	assert.Equal(t, "test-hiv-i-ii", documentID(entities.SearchResultKindTest, "HIV I & II"))
}

func TestCollectionSchema(t *testing.T) {
	schema := CollectionSchema("lab_tests")

	assert.Equal(t, "lab_tests", schema.Name)
	assert.Equal(t, "rank", *schema.DefaultSortingField)
}
