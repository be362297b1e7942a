package classify

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Taxonomy names, in CTE form order.
const (
	TaxonomyMaterials  = "materials"
	TaxonomyMethods    = "methods"
	TaxonomyAssessment = "assessment"
	TaxonomyCurriculum = "curriculum"
	TaxonomyOtherAreas = "other_areas"
)

// KeyIntegratedAcademics is the composite other-areas category whose
// presence follows the curriculum result instead of keywords.
const KeyIntegratedAcademics = "integrated_academics"

//go:embed taxonomies.yml
var rawTaxonomies []byte

// Category is one checkbox of a taxonomy. A category without triggers can
// only be set explicitly.
type Category struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label"`
	Triggers []string `yaml:"triggers,omitempty"`
}

// Taxonomy is an ordered category table.
type Taxonomy struct {
	Name       string     `yaml:"name"`
	Categories []Category `yaml:"categories"`
}

var taxonomies = mustParseTaxonomies(rawTaxonomies)

func mustParseTaxonomies(data []byte) []Taxonomy {
	var parsed struct {
		Taxonomies []Taxonomy `yaml:"taxonomies"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		panic(fmt.Sprintf("classify: invalid taxonomies.yml: %v", err))
	}
	return parsed.Taxonomies
}

// Names returns the taxonomy names in form order.
func Names() []string {
	names := make([]string, 0, len(taxonomies))
	for _, taxonomy := range taxonomies {
		names = append(names, taxonomy.Name)
	}
	return names
}

// Categories returns the ordered category table of a taxonomy, or nil for an
// unknown taxonomy name.
func Categories(taxonomy string) []Category {
	for _, table := range taxonomies {
		if table.Name == taxonomy {
			return table.Categories
		}
	}
	return nil
}

// Classify returns the keys of every category of a taxonomy with at least
// one trigger occurring in text, in table order. Matching is
// case-insensitive and substring based. Unknown taxonomies and empty text
// yield an empty result, never an error.
func Classify(taxonomy string, text string) []string {
	normalized := strings.ToLower(text)
	var keys []string
	for _, category := range Categories(taxonomy) {
		for _, trigger := range category.Triggers {
			if strings.Contains(normalized, trigger) {
				keys = append(keys, category.Key)
				break
			}
		}
	}
	return keys
}

// UnknownKeys returns the entries of keys naming no category of the
// taxonomy, in input order.
func UnknownKeys(taxonomy string, keys []string) []string {
	known := make(map[string]bool)
	for _, category := range Categories(taxonomy) {
		known[category.Key] = true
	}

	var unknown []string
	for _, key := range keys {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	return unknown
}
