package classify

import (
	"github.com/hsmedia/lessonpack/internal/plan"
)

// TagSets holds the resolved category keys of each taxonomy for one day.
type TagSets map[string][]string

// Has reports whether the resolved set of a taxonomy contains key.
func (tags TagSets) Has(taxonomy, key string) bool {
	for _, candidate := range tags[taxonomy] {
		if candidate == key {
			return true
		}
	}
	return false
}

// Resolve produces the tag sets of one day. A taxonomy key present in the
// input replaces keyword classification entirely, even when its list is
// empty. Afterwards integrated_academics is present in other_areas exactly
// when the curriculum result is non-empty, whatever its source.
func Resolve(day plan.DayPlan) TagSets {
	text := day.KeywordText()
	tags := make(TagSets, len(taxonomies))
	for _, taxonomy := range taxonomies {
		if explicit, found := day.ExplicitTags(taxonomy.Name); found {
			copied := make([]string, len(explicit))
			copy(copied, explicit)
			tags[taxonomy.Name] = copied
			continue
		}
		tags[taxonomy.Name] = Classify(taxonomy.Name, text)
	}

	hasCurriculum := len(tags[TaxonomyCurriculum]) > 0
	switch {
	case hasCurriculum && !tags.Has(TaxonomyOtherAreas, KeyIntegratedAcademics):
		tags[TaxonomyOtherAreas] = append(tags[TaxonomyOtherAreas], KeyIntegratedAcademics)
	case !hasCurriculum && tags.Has(TaxonomyOtherAreas, KeyIntegratedAcademics):
		tags[TaxonomyOtherAreas] = without(tags[TaxonomyOtherAreas], KeyIntegratedAcademics)
	}
	return tags
}

func without(keys []string, remove string) []string {
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != remove {
			result = append(result, key)
		}
	}
	return result
}
