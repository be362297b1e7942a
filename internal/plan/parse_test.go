package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *WeekPlan
		wantErr  bool
	}{
		{
			name:  "weekly document",
			input: `{"week": "3", "unit": "Camera Basics", "days": [{"topic": "Camera Angles", "objectives": ["Identify angles"]}]}`,
			expected: &WeekPlan{
				Week: "3",
				Unit: "Camera Basics",
				Days: []DayPlan{
					{Topic: "Camera Angles", Objectives: []string{"Identify angles"}},
				},
				Source: "test.json",
			},
		},
		{
			name:  "numeric week and empty days",
			input: `{"week": 3, "unit": "Camera Basics", "days": []}`,
			expected: &WeekPlan{
				Week:   "3",
				Unit:   "Camera Basics",
				Days:   []DayPlan{},
				Source: "test.json",
			},
		},
		{
			name:  "document without days is a single lesson",
			input: `{"week": "1", "topic": "Intro to Media", "objectives": ["Describe the course"], "teacher_notes": "First day"}`,
			expected: &WeekPlan{
				Week: "1",
				Days: []DayPlan{
					{
						Topic:        "Intro to Media",
						Objectives:   []string{"Describe the course"},
						TeacherNotes: "First day",
					},
				},
				Source:       "test.json",
				SingleLesson: true,
			},
		},
		{
			name:    "invalid json",
			input:   `{"week": `,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input), "test.json")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("inline json", func(t *testing.T) {
		got, err := Load(`{"week": "3", "unit": "Camera Basics", "days": []}`)
		require.NoError(t, err)
		assert.Equal(t, SourceInline, got.Source)
		assert.Equal(t, "Camera Basics", got.Unit)
	})

	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "week3.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"week": "3", "unit": "Camera Basics", "days": []}`), 0644))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, got.Source)
		assert.Equal(t, FlexString("3"), got.Week)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("empty argument", func(t *testing.T) {
		_, err := Load("   ")
		assert.Error(t, err)
	})
}
