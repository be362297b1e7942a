package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hsmedia/lessonpack/internal/plan"
)

func TestResolve(t *testing.T) {
	t.Run("inference runs when no explicit tags are present", func(t *testing.T) {
		day := plan.DayPlan{
			Topic:      "Camera Angles",
			Objectives: []string{"Practice filming with the camera"},
		}

		tags := Resolve(day)
		assert.Equal(t, []string{"video_dvd", "labs", "other_equipment"}, tags[TaxonomyMaterials])
		assert.True(t, tags.Has(TaxonomyCurriculum, "technology"))
		assert.True(t, tags.Has(TaxonomyOtherAreas, KeyIntegratedAcademics))
	})

	t.Run("explicit tags replace inference entirely", func(t *testing.T) {
		day := plan.DayPlan{
			Topic:      "Camera Angles",
			Objectives: []string{"Practice filming with the camera"},
			Materials:  []string{"textbook", "labs"},
		}

		tags := Resolve(day)
		assert.Equal(t, []string{"textbook", "labs"}, tags[TaxonomyMaterials])
	})

	t.Run("an explicitly empty list disables inference", func(t *testing.T) {
		day := plan.DayPlan{
			Topic:      "Camera Angles",
			Objectives: []string{"Practice filming with the camera"},
			Materials:  []string{},
		}

		tags := Resolve(day)
		assert.Empty(t, tags[TaxonomyMaterials])
	})

	t.Run("integrated academics follows a non-empty curriculum", func(t *testing.T) {
		day := plan.DayPlan{
			Topic:      "Staff Planning Day",
			Objectives: []string{"Prepare the room"},
			Curriculum: []string{"math"},
			OtherAreas: []string{"safety"},
		}

		tags := Resolve(day)
		assert.Equal(t, []string{"safety", KeyIntegratedAcademics}, tags[TaxonomyOtherAreas])
	})

	t.Run("integrated academics is dropped when curriculum is empty", func(t *testing.T) {
		day := plan.DayPlan{
			Topic:      "Staff Planning Day",
			Objectives: []string{"Prepare the room"},
			Curriculum: []string{},
			OtherAreas: []string{"safety", KeyIntegratedAcademics},
		}

		tags := Resolve(day)
		assert.Equal(t, []string{"safety"}, tags[TaxonomyOtherAreas])
	})

	t.Run("no curriculum match means no integrated academics", func(t *testing.T) {
		day := plan.DayPlan{
			Topic:      "Attendance Day",
			Objectives: []string{"Take roll"},
		}

		tags := Resolve(day)
		assert.Empty(t, tags[TaxonomyCurriculum])
		assert.False(t, tags.Has(TaxonomyOtherAreas, KeyIntegratedAcademics))
	})

	t.Run("resolving does not mutate the day", func(t *testing.T) {
		day := plan.DayPlan{
			Topic:      "Staff Planning Day",
			Objectives: []string{"Prepare the room"},
			Curriculum: []string{"math"},
			OtherAreas: []string{"safety"},
		}

		Resolve(day)
		assert.Equal(t, []string{"safety"}, day.OtherAreas)
	})
}
