// Package testutil provides shared test fixtures for week plans, input
// documents and config files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsmedia/lessonpack/internal/plan"
)

// SetupTestConfig creates a minimal config file whose output directory and
// history database live under tmpDir. Returns the path to the config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	outputDir := filepath.Join(tmpDir, "output")
	require.NoError(t, os.MkdirAll(outputDir, 0o755))

	configContent := fmt.Sprintf(`course:
  title: Media Foundations
  duration: "90"
output:
  directory: %s
history:
  database: %s
`,
		outputDir,
		filepath.Join(tmpDir, "lessonpack.db"),
	)

	cfgPath := filepath.Join(tmpDir, "lessonpack.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0o644))
	return cfgPath
}

// WeekOption adjusts the standard week fixture.
type WeekOption func(*plan.WeekPlan)

// WithWeek overrides the week number.
func WithWeek(week string) WeekOption {
	return func(w *plan.WeekPlan) {
		w.Week = plan.FlexString(week)
	}
}

// WithUnit overrides the unit name.
func WithUnit(unit string) WeekOption {
	return func(w *plan.WeekPlan) {
		w.Unit = unit
	}
}

// WithSkipPresentations marks the week as presentation-free.
func WithSkipPresentations() WeekOption {
	return func(w *plan.WeekPlan) {
		w.SkipPresentations = true
	}
}

// WithoutSchedules clears every day's schedule.
func WithoutSchedules() WeekOption {
	return func(w *plan.WeekPlan) {
		for i := range w.Days {
			w.Days[i].Schedule = nil
		}
	}
}

// WithoutHandouts clears the student handout list.
func WithoutHandouts() WeekOption {
	return func(w *plan.WeekPlan) {
		w.StudentHandouts = nil
	}
}

// WithDays replaces the day list.
func WithDays(days ...plan.DayPlan) WeekOption {
	return func(w *plan.WeekPlan) {
		w.Days = days
	}
}

// Week builds the standard two-day week fixture: camera angles on Monday,
// camera shots on Tuesday, one student handout.
func Week(options ...WeekOption) *plan.WeekPlan {
	week := &plan.WeekPlan{
		Week:      "3",
		Unit:      "Camera Basics",
		WeekFocus: "Camera angles and shot composition",
		WeekObjectives: []string{
			"Identify the five basic camera angles",
			"Frame each standard shot size",
		},
		WeekMaterials:       []string{"Cameras", "SD cards", "Shot list handout"},
		FormativeAssessment: "Daily exit tickets",
		SummativeAssessment: "Friday shot portfolio",
		WeeklyDeliverable:   "Five-angle photo series",
		Days: []plan.DayPlan{
			{
				Topic: "Camera Angles",
				Objectives: []string{
					"Identify the five basic camera angles",
					"Explain how angle changes meaning",
				},
				Schedule: []plan.Activity{
					{Time: "10 min", Name: "Bell Ringer", Description: "Sketch three camera angles from memory"},
					{Time: "30 min", Name: "Direct Instruction", Description: "Angle types with film stills"},
					{Time: "40 min", Name: "Studio Practice", Description: "Shoot the five angles in teams"},
					{Time: "10 min", Name: "Exit Ticket", Description: "One angle you will use tomorrow"},
				},
				Vocabulary: plan.Entries{
					{Key: "High Angle", Value: "Camera looks down at the subject"},
					{Key: "Low Angle", Value: "Camera looks up at the subject"},
				},
				TeacherNotes: "Check SD cards before class",
			},
			{
				Topic: "Camera Shots",
				Objectives: []string{
					"Frame each standard shot size",
				},
				Schedule: []plan.Activity{
					{Time: "10 min", Name: "Warm Up", Description: "List every shot size you know"},
					{Time: "35 min", Name: "Shot Size Lecture", Description: "Wide shot through extreme close-up"},
					{Time: "45 min", Name: "Framing Practice", Description: "Recreate a shot chart in pairs"},
				},
			},
		},
		StudentHandouts: []plan.HandoutSpec{
			{
				Name:  "Shot List",
				Title: "Shot List Worksheet",
				Sections: []plan.Section{
					{Heading: "Shot Checklist", Items: []string{"High angle", "Low angle", "Eye level"}},
				},
				Questions: []string{"Which angle makes a subject look powerful?"},
			},
		},
		Source: "test fixture",
	}

	for _, option := range options {
		option(week)
	}
	return week
}

const weekJSON = `{
  "week": 3,
  "unit": "Camera Basics",
  "week_focus": "Camera angles and shot composition",
  "week_objectives": ["Identify the five basic camera angles"],
  "days": [
    {
      "topic": "Camera Angles",
      "objectives": ["Identify the five basic camera angles"],
      "schedule": [
        {"time": "10 min", "name": "Bell Ringer", "description": "Sketch three camera angles from memory"},
        {"time": "30 min", "name": "Direct Instruction", "description": "Angle types with film stills"},
        {"time": "40 min", "name": "Studio Practice", "description": "Shoot the five angles in teams"}
      ],
      "vocabulary": {"High Angle": "Camera looks down at the subject"}
    },
    {
      "topic": "Camera Shots",
      "objectives": ["Frame each standard shot size"],
      "schedule": [
        {"time": "10 min", "name": "Warm Up", "description": "List every shot size you know"},
        {"time": "35 min", "name": "Shot Size Lecture", "description": "Wide shot through extreme close-up"}
      ]
    }
  ],
  "student_handouts": [
    {
      "name": "Shot List",
      "title": "Shot List Worksheet",
      "questions": ["Which angle makes a subject look powerful?"]
    }
  ]
}
`

const singleLessonJSON = `{
  "week": 1,
  "topic": "Rule of Thirds",
  "objectives": ["Apply the rule of thirds to a photo"],
  "schedule": [
    {"time": "15 min", "name": "Grid Demo", "description": "Overlay grids on famous shots"}
  ]
}
`

// SetupWeekFile writes a complete weekly input document into dir and
// returns its path.
func SetupWeekFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "week3.json")
	require.NoError(t, os.WriteFile(path, []byte(weekJSON), 0o644))
	return path
}

// SetupSingleLessonFile writes a legacy single-lesson document (no days
// list) into dir and returns its path.
func SetupSingleLessonFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "lesson.json")
	require.NoError(t, os.WriteFile(path, []byte(singleLessonJSON), 0o644))
	return path
}
