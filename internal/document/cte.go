package document

import (
	"fmt"
	"strings"

	"github.com/hsmedia/lessonpack/internal/classify"
	"github.com/hsmedia/lessonpack/internal/plan"
)

// Course carries the course-level settings stamped onto every CTE plan.
type Course struct {
	Title    string
	Duration string
}

// Checkbox is one taxonomy category with its checked state.
type Checkbox struct {
	Key     string
	Label   string
	Checked bool
}

// CTEPlan is the flat field set of the district CTE lesson plan form.
type CTEPlan struct {
	Week             string
	CourseTitle      string
	Topic            string
	Duration         string
	ContentStandards string
	Overview         string
	Procedures       string
	Materials        []Checkbox
	Methods          []Checkbox
	Assessment       []Checkbox
	Curriculum       []Checkbox
	OtherAreas       []Checkbox
	Differences      string
	EmbeddedCredit   string
	LessonEvaluation string
}

// BuildCTE fills the CTE form fields for one lesson day. The overview and
// the procedures and differences blocks prefer explicit input fields and
// are derived from the rest of the day otherwise.
func BuildCTE(week *plan.WeekPlan, day plan.DayPlan, tags classify.TagSets, course Course) CTEPlan {
	overview := day.Overview
	if overview == "" {
		overview = plan.DeriveOverview(day)
	}
	return CTEPlan{
		Week:             string(week.Week),
		CourseTitle:      course.Title,
		Topic:            day.Topic,
		Duration:         day.DurationText(course.Duration),
		ContentStandards: day.ContentStandards,
		Overview:         overview,
		Procedures:       proceduresText(day),
		Materials:        checkboxes(classify.TaxonomyMaterials, tags),
		Methods:          checkboxes(classify.TaxonomyMethods, tags),
		Assessment:       checkboxes(classify.TaxonomyAssessment, tags),
		Curriculum:       checkboxes(classify.TaxonomyCurriculum, tags),
		OtherAreas:       checkboxes(classify.TaxonomyOtherAreas, tags),
		Differences:      differencesText(day),
		EmbeddedCredit:   day.EmbeddedCredit,
		LessonEvaluation: day.LessonEvaluation,
	}
}

func checkboxes(taxonomy string, tags classify.TagSets) []Checkbox {
	categories := classify.Categories(taxonomy)
	boxes := make([]Checkbox, 0, len(categories))
	for _, category := range categories {
		boxes = append(boxes, Checkbox{
			Key:     category.Key,
			Label:   category.Label,
			Checked: tags.Has(taxonomy, category.Key),
		})
	}
	return boxes
}

// proceduresText renders the schedule as one line per activity. An explicit
// procedures field replaces the derived text. Activities without a name are
// skipped.
func proceduresText(day plan.DayPlan) string {
	if day.Procedures != "" {
		return day.Procedures
	}
	lines := make([]string, 0, len(day.Schedule))
	for _, activity := range day.Schedule {
		if activity.Name == "" {
			continue
		}
		line := activity.Name
		if activity.Time != "" {
			line = fmt.Sprintf("%s - %s", activity.Time, activity.Name)
		}
		if activity.Description != "" {
			line = fmt.Sprintf("%s: %s", line, activity.Description)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// differenceLabels fixes the render order and wording of the known
// differentiation levels. ELL keeps "Students" instead of "Learners".
var differenceLabels = []struct {
	key   string
	label string
}{
	{"Advanced", "Advanced Learners"},
	{"Struggling", "Struggling Learners"},
	{"ELL", "ELL Students"},
}

func differencesText(day plan.DayPlan) string {
	if day.IndividualDifferences != "" {
		return day.IndividualDifferences
	}
	var lines []string
	for _, level := range differenceLabels {
		if strategy, ok := day.Differentiation.Get(level.key); ok && strategy != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", level.label, strategy))
		}
	}
	for _, entry := range day.Differentiation {
		if isKnownLevel(entry.Key) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", entry.Key, entry.Value))
	}
	return strings.Join(lines, "\n")
}

func isKnownLevel(key string) bool {
	for _, level := range differenceLabels {
		if level.key == key {
			return true
		}
	}
	return false
}
