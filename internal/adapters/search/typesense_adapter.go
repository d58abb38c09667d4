package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
	"github.com/wellness-hospital/laboratory/backend/internal/domain/repositories"
	tsclient "github.com/wellness-hospital/laboratory/backend/internal/infrastructure/clients/typesense"
)

// TypesenseAdapter mirrors catalog entries into a Typesense collection
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.CatalogIndexRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	if _, err := a.client.Client().Collection(a.client.Collection()).Retrieve(ctx); err == nil {
		return nil
	}

	_, err := a.client.Client().Collections().Create(ctx, CollectionSchema(a.client.Collection()))
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// IndexProfile upserts a profile document
func (a *TypesenseAdapter) IndexProfile(ctx context.Context, profile entities.LabTestProfile) error {
	if _, err := a.client.Client().Collection(a.client.Collection()).Documents().Upsert(ctx, ProfileDocument(profile)); err != nil {
		return fmt.Errorf("failed to index profile %q: %w", profile.Name, err)
	}
	return nil
}

// IndexParameter upserts a parameter document
func (a *TypesenseAdapter) IndexParameter(ctx context.Context, param entities.LabTestParameter) error {
	if _, err := a.client.Client().Collection(a.client.Collection()).Documents().Upsert(ctx, ParameterDocument(param)); err != nil {
		return fmt.Errorf("failed to index parameter %q: %w", param.Name, err)
	}
	return nil
}

// CollectionSchema describes the catalog collection
func CollectionSchema(name string) *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: name,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "type", Type: "string", Facet: pointer.True()},
			{Name: "name", Type: "string"},
			{Name: "category", Type: "string", Facet: pointer.True()},
			{Name: "keywords", Type: "string[]", Optional: pointer.True()},
			{Name: "unit", Type: "string", Optional: pointer.True()},
			{Name: "ref_range", Type: "string", Optional: pointer.True()},
			{Name: "parameters", Type: "string[]", Optional: pointer.True()},
			{Name: "rank", Type: "int32"},
		},
		DefaultSortingField: pointer.String("rank"),
	}
}

// ProfileDocument builds the index document for a profile. Profiles carry a
// higher rank so they sort ahead of parameters.
func ProfileDocument(profile entities.LabTestProfile) map[string]interface{} {
	paramNames := make([]string, 0, len(profile.Parameters))
	for _, p := range profile.Parameters {
		paramNames = append(paramNames, p.Name)
	}

	return map[string]interface{}{
		"id":         documentID(entities.SearchResultKindProfile, profile.Name),
		"type":       string(entities.SearchResultKindProfile),
		"name":       profile.Name,
		"category":   profile.Category,
		"keywords":   append([]string{}, profile.Keywords...),
		"parameters": paramNames,
		"rank":       2,
	}
}

// ParameterDocument builds the index document for a flat parameter
func ParameterDocument(param entities.LabTestParameter) map[string]interface{} {
	return map[string]interface{}{
		"id":        documentID(entities.SearchResultKindTest, param.Name),
		"type":      string(entities.SearchResultKindTest),
		"name":      param.Name,
		"category":  param.Category,
		"unit":      param.Unit,
		"ref_range": param.RefRange,
		"rank":      1,
	}
}

func documentID(kind entities.SearchResultKind, name string) string {
	var b strings.Builder
	b.WriteString(string(kind))
	b.WriteByte('-')

	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// DropSchema deletes the collection so the next InitSchema recreates it
func (a *TypesenseAdapter) DropSchema(ctx context.Context) error {
	if _, err := a.client.Client().Collection(a.client.Collection()).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete typesense collection: %w", err)
	}
	return nil
}
