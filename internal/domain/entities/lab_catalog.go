package entities

import (
	"encoding/json"
)

// UnitNotApplicable marks qualitative parameters that carry no measurement unit.
const UnitNotApplicable = "-"

// Laboratory departments used to file parameters and profiles.
const (
	CategoryHematology       = "Hematology"
	CategoryBiochemistry     = "Biochemistry"
	CategoryMicrobiology     = "Microbiology"
	CategoryUrineExamination = "Urine Examination"
	CategoryCytology         = "Cytology"
	CategoryHistopathology   = "Histopathology"
	CategorySemenAnalysis    = "Semen Analysis"
)

// LabTestParameter is a single measurable analyte in the catalog.
type LabTestParameter struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	RefRange string `json:"ref_range"`
	Category string `json:"category"`
}

// ProfileParameter is a parameter as listed inside a profile. Group is a display
// sub-heading within the profile and may be empty.
type ProfileParameter struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	RefRange string `json:"ref_range"`
	Category string `json:"category"`
	Group    string `json:"group,omitempty"`
}

// LabTestProfile is a named panel that expands to an ordered parameter list.
type LabTestProfile struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Keywords   []string           `json:"keywords"`
	Parameters []ProfileParameter `json:"parameters"`
}

// Clone returns a deep copy of the profile.
func (p LabTestProfile) Clone() LabTestProfile {
	out := p
	out.Keywords = append([]string(nil), p.Keywords...)
	out.Parameters = append([]ProfileParameter(nil), p.Parameters...)
	return out
}

// SearchResultKind discriminates the variants of SearchResult.
type SearchResultKind string

const (
	SearchResultKindTest    SearchResultKind = "test"
	SearchResultKindProfile SearchResultKind = "profile"
)

// SearchResult is either a TestResult or a ProfileResult. The unexported marker
// method keeps other packages from adding variants.
type SearchResult interface {
	Kind() SearchResultKind
	Name() string
	Category() string
	isSearchResult()
}

// TestResult is a search hit on a single catalog parameter.
type TestResult struct {
	Test LabTestParameter
}

func (r TestResult) Kind() SearchResultKind { return SearchResultKindTest }
func (r TestResult) Name() string           { return r.Test.Name }
func (r TestResult) Category() string       { return r.Test.Category }
func (TestResult) isSearchResult()          {}

// MarshalJSON flattens name and category next to the tagged payload.
func (r TestResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(searchResultJSON{
		Type:     SearchResultKindTest,
		Name:     r.Test.Name,
		Category: r.Test.Category,
		Test:     &r.Test,
	})
}

// ProfileResult is a search hit on a profile.
type ProfileResult struct {
	Profile LabTestProfile
}

func (r ProfileResult) Kind() SearchResultKind { return SearchResultKindProfile }
func (r ProfileResult) Name() string           { return r.Profile.Name }
func (r ProfileResult) Category() string       { return r.Profile.Category }
func (ProfileResult) isSearchResult()          {}

// MarshalJSON flattens name and category next to the tagged payload.
func (r ProfileResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(searchResultJSON{
		Type:     SearchResultKindProfile,
		Name:     r.Profile.Name,
		Category: r.Profile.Category,
		Profile:  &r.Profile,
	})
}

type searchResultJSON struct {
	Type     SearchResultKind  `json:"type"`
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Test     *LabTestParameter `json:"test,omitempty"`
	Profile  *LabTestProfile   `json:"profile,omitempty"`
}

// DecodeSearchResult parses the wire form produced by the MarshalJSON methods.
// It returns false when the type tag and payload do not agree.
func DecodeSearchResult(data []byte) (SearchResult, bool, error) {
	var raw searchResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, err
	}

	switch raw.Type {
	case SearchResultKindTest:
		if raw.Test == nil || raw.Profile != nil {
			return nil, false, nil
		}
		return TestResult{Test: *raw.Test}, true, nil
	case SearchResultKindProfile:
		if raw.Profile == nil || raw.Test != nil {
			return nil, false, nil
		}
		return ProfileResult{Profile: raw.Profile.Clone()}, true, nil
	default:
		return nil, false, nil
	}
}
