package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	validWeek := `{
		"week": "3",
		"unit": "Camera Basics",
		"days": [
			{
				"topic": "Camera Angles",
				"objectives": ["Identify the five basic camera angles"],
				"schedule": [{"time": "10 min", "name": "Bell Ringer", "description": "Prompt"}]
			}
		]
	}`

	tests := []struct {
		name              string
		input             string
		expectedLocations []string
		expectedContent   []string
		expectedWarnings  int
	}{
		{
			name:  "valid weekly plan",
			input: validWeek,
		},
		{
			name:              "missing week and unit",
			input:             `{"days": [{"topic": "Camera Angles", "objectives": ["Identify angles"], "schedule": [{"name": "Lab"}]}]}`,
			expectedLocations: []string{"week", "unit"},
		},
		{
			name:              "missing day topic and objectives",
			input:             `{"week": "3", "unit": "Camera Basics", "days": [{"schedule": [{"name": "Lab"}]}]}`,
			expectedLocations: []string{"days[0].topic", "days[0].objectives"},
		},
		{
			name:              "empty objectives list",
			input:             `{"week": "3", "unit": "Camera Basics", "days": [{"topic": "Editing", "objectives": [], "schedule": [{"name": "Lab"}]}]}`,
			expectedLocations: []string{"days[0].objectives"},
		},
		{
			name:            "empty days list",
			input:           `{"week": "3", "unit": "Camera Basics", "days": []}`,
			expectedContent: []string{"days"},
		},
		{
			name:  "single lesson does not require a unit",
			input: `{"week": "1", "topic": "Intro to Media", "objectives": ["Describe the course"], "schedule": [{"name": "Lab"}]}`,
		},
		{
			name:              "single lesson reports top level locations",
			input:             `{"week": "1", "objectives": ["Describe the course"], "schedule": [{"name": "Lab"}]}`,
			expectedLocations: []string{"topic"},
		},
		{
			name: "duplicate handout names collide",
			input: `{
				"week": "3",
				"unit": "Camera Basics",
				"days": [{"topic": "Camera Angles", "objectives": ["Identify angles"], "schedule": [{"name": "Lab"}]}],
				"student_handouts": [
					{"name": "Shot List", "title": "Shot List"},
					{"name": "Shot List", "title": "Shot List Again"}
				]
			}`,
			expectedContent: []string{"student_handouts[1].name"},
		},
		{
			name:             "day without schedule is a warning",
			input:            `{"week": "3", "unit": "Camera Basics", "days": [{"topic": "Camera Angles", "objectives": ["Identify angles"]}]}`,
			expectedWarnings: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, err := Parse([]byte(tt.input), "test.json")
			require.NoError(t, err)

			validator, err := NewValidator()
			require.NoError(t, err)

			result := validator.Validate(week)

			locations := make([]string, 0, len(result.StructureErrors))
			for _, validationErr := range result.StructureErrors {
				locations = append(locations, validationErr.Location)
				assert.Equal(t, "error", validationErr.Severity)
				assert.Equal(t, "test.json", validationErr.Source)
			}
			if len(tt.expectedLocations) == 0 {
				assert.Empty(t, locations)
			} else {
				assert.Equal(t, tt.expectedLocations, locations)
			}

			contentLocations := make([]string, 0, len(result.ContentErrors))
			for _, validationErr := range result.ContentErrors {
				contentLocations = append(contentLocations, validationErr.Location)
			}
			if len(tt.expectedContent) == 0 {
				assert.Empty(t, contentLocations)
			} else {
				assert.Equal(t, tt.expectedContent, contentLocations)
			}

			assert.Len(t, result.Warnings, tt.expectedWarnings)
			assert.Equal(t, len(locations) > 0 || len(contentLocations) > 0, result.HasErrors())
		})
	}
}

func TestValidator_Validate_messages(t *testing.T) {
	week, err := Parse([]byte(`{"week": "3", "unit": "Camera Basics", "days": [{"objectives": [], "schedule": [{"name": "Lab"}]}]}`), "test.json")
	require.NoError(t, err)

	validator, err := NewValidator()
	require.NoError(t, err)

	result := validator.Validate(week)
	require.Len(t, result.StructureErrors, 2)
	assert.Equal(t, "days[0].topic", result.StructureErrors[0].Location)
	assert.Contains(t, result.StructureErrors[0].Message, "required")
	assert.Equal(t, "days[0].objectives", result.StructureErrors[1].Location)
	assert.Contains(t, result.StructureErrors[1].Message, "at least 1")
}

func TestValidationError_Error(t *testing.T) {
	validationErr := ValidationError{
		Source:      "week3.json",
		Location:    "days[0].topic",
		Message:     "topic is a required field",
		Suggestions: []string{"add a topic"},
	}
	assert.Equal(t,
		"week3.json (days[0].topic): topic is a required field [Suggestion: add a topic]",
		validationErr.Error(),
	)

	assert.Equal(t, "week3.json: no lesson days found", ValidationError{
		Source:  "week3.json",
		Message: "no lesson days found",
	}.Error())
}
