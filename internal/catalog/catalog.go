// Package catalog holds the laboratory reference catalog: individual test
// parameters, grouped profiles (panels) and the matcher used by autocomplete and
// result-entry forms.
//
// A Catalog is immutable once built. Every accessor returns copies, so callers may
// edit what they receive without affecting other callers.
package catalog

import (
	"strings"
	"sync"

	"github.com/wellness-hospital/laboratory/backend/internal/domain/entities"
)

// Catalog is a read-only table of parameters and profiles.
type Catalog struct {
	parameters []entities.LabTestParameter
	profiles   []entities.LabTestProfile
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog, built on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(defaultParameters(), defaultProfiles())
	})
	return defaultCatalog
}

// New builds a catalog from the given declarations. Order is preserved and is the
// order search results come back in.
func New(parameters []entities.LabTestParameter, profiles []entities.LabTestProfile) *Catalog {
	c := &Catalog{
		parameters: append([]entities.LabTestParameter(nil), parameters...),
		profiles:   make([]entities.LabTestProfile, 0, len(profiles)),
	}
	for _, p := range profiles {
		c.profiles = append(c.profiles, p.Clone())
	}
	return c
}

// Search returns profiles whose name or keywords contain the query, followed by
// parameters whose name contains it. Matching is case-insensitive substring
// containment; an empty or blank query yields no results.
func (c *Catalog) Search(query string) []entities.SearchResult {
	results := []entities.SearchResult{}

	q := normalize(query)
	if q == "" {
		return results
	}

	for _, profile := range c.profiles {
		if profileMatchesQuery(profile, q) {
			results = append(results, entities.ProfileResult{Profile: profile.Clone()})
		}
	}

	for _, test := range c.parameters {
		if strings.Contains(strings.ToLower(test.Name), q) {
			results = append(results, entities.TestResult{Test: test})
		}
	}

	return results
}

// ExpandProfile returns the profile's parameters in declaration order as a newly
// allocated slice.
func (c *Catalog) ExpandProfile(profile entities.LabTestProfile) []entities.ProfileParameter {
	out := make([]entities.ProfileParameter, len(profile.Parameters))
	copy(out, profile.Parameters)
	return out
}

// MatchProfileByTestName finds the profile an order's test name refers to. The first
// profile in catalog order wins when its name contains the test name, or when one of
// its keywords equals, contains, or is contained in the test name.
func (c *Catalog) MatchProfileByTestName(testName string) (entities.LabTestProfile, bool) {
	name := normalize(testName)
	if name == "" {
		return entities.LabTestProfile{}, false
	}

	for _, profile := range c.profiles {
		if strings.Contains(strings.ToLower(profile.Name), name) {
			return profile.Clone(), true
		}
		for _, keyword := range profile.Keywords {
			kw := strings.ToLower(keyword)
			if kw == name || strings.Contains(kw, name) || strings.Contains(name, kw) {
				return profile.Clone(), true
			}
		}
	}

	return entities.LabTestProfile{}, false
}

// Profiles returns every profile in declaration order.
func (c *Catalog) Profiles() []entities.LabTestProfile {
	out := make([]entities.LabTestProfile, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p.Clone())
	}
	return out
}

// Parameters returns every flat parameter in declaration order.
func (c *Catalog) Parameters() []entities.LabTestParameter {
	return append([]entities.LabTestParameter(nil), c.parameters...)
}

// ProfileByName looks a profile up by its exact display name, ignoring case.
func (c *Catalog) ProfileByName(name string) (entities.LabTestProfile, bool) {
	for _, p := range c.profiles {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p.Clone(), true
		}
	}
	return entities.LabTestProfile{}, false
}

// ParameterByName looks a parameter up by its exact display name, ignoring case.
func (c *Catalog) ParameterByName(name string) (entities.LabTestParameter, bool) {
	for _, p := range c.parameters {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return entities.LabTestParameter{}, false
}

// Categories lists the distinct categories in first-seen order, parameters first.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string

	add := func(category string) {
		if category == "" || seen[category] {
			return
		}
		seen[category] = true
		categories = append(categories, category)
	}

	for _, p := range c.parameters {
		add(p.Category)
	}
	for _, p := range c.profiles {
		add(p.Category)
	}

	return categories
}

func profileMatchesQuery(profile entities.LabTestProfile, q string) bool {
	if strings.Contains(strings.ToLower(profile.Name), q) {
		return true
	}
	for _, keyword := range profile.Keywords {
		if strings.Contains(strings.ToLower(keyword), q) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
