package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsmedia/lessonpack/internal/document"
)

func fullPlan() document.CTEPlan {
	return document.CTEPlan{
		Week:             "3",
		CourseTitle:      "Media Foundations",
		Topic:            "Shot Composition",
		Duration:         "90",
		ContentStandards: "Standard 7: Demonstrate camera operations",
		Overview:         "Students will learn about Shot Composition.",
		Procedures:       "10 min - Bell Ringer: Quick write\n25 min - Direct Instruction: Rule of thirds",
		Materials: []document.Checkbox{
			{Key: "computer", Label: "Computer", Checked: true},
			{Key: "handouts", Label: "Handouts", Checked: false},
		},
		Methods: []document.Checkbox{
			{Key: "lecture", Label: "Lecture", Checked: true},
		},
		Assessment: []document.Checkbox{
			{Key: "classwork", Label: "Classwork", Checked: true},
		},
		Curriculum: []document.Checkbox{
			{Key: "arts", Label: "Arts", Checked: false},
		},
		OtherAreas: []document.Checkbox{
			{Key: "technology", Label: "Technology", Checked: true},
		},
		Differences:    "Advanced Learners: Extension shot list",
		EmbeddedCredit: "Visual arts credit",
	}
}

func TestWriteCTEPlan(t *testing.T) {
	tests := []struct {
		name         string
		templatePath string
		plan         document.CTEPlan

		wantContains []string
	}{
		{
			name:         "uses embedded template when path is empty",
			templatePath: "",
			plan:         fullPlan(),
			wantContains: []string{
				"# CTE Lesson Plan",
				"**Week:** 3",
				"**Course Title:** Media Foundations",
				"**Topic:** Shot Composition",
				"**Estimate duration in minutes:** 90",
				"## TN State Content Standards Addressed",
				"Standard 7: Demonstrate camera operations",
				"- [x] Computer",
				"- [ ] Handouts",
				"10 min - Bell Ringer: Quick write",
				"- [x] Lecture",
				"- [x] Classwork",
				"- [ ] Arts",
				"- [x] Technology",
				"Advanced Learners: Extension shot list",
				"Visual arts credit",
			},
		},
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "custom-cte.md.go.tmpl")
				content := `Custom: {{ .Topic }} ({{ .Duration }} min)`
				err := os.WriteFile(templatePath, []byte(content), 0644)
				require.NoError(t, err)
				return templatePath
			}(t),
			plan:         fullPlan(),
			wantContains: []string{"Custom: Shot Composition (90 min)"},
		},
		{
			name:         "falls back to embedded template when file doesn't exist",
			templatePath: "/non/existent/custom-cte.md.go.tmpl",
			plan:         fullPlan(),
			wantContains: []string{"# CTE Lesson Plan", "**Topic:** Shot Composition"},
		},
		{
			name: "falls back to embedded template when file doesn't parse",
			templatePath: func(t *testing.T) string {
				tmpDir := t.TempDir()
				templatePath := filepath.Join(tmpDir, "invalid.md.go.tmpl")
				err := os.WriteFile(templatePath, []byte(`{{ .Unclosed`), 0644)
				require.NoError(t, err)
				return templatePath
			}(t),
			plan:         fullPlan(),
			wantContains: []string{"# CTE Lesson Plan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCTEPlan(&buf, tt.templatePath, tt.plan))
			output := buf.String()
			for _, s := range tt.wantContains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestWriteCTEPlan_emptyOptionalFields(t *testing.T) {
	plan := document.CTEPlan{
		Week:        "4",
		CourseTitle: "Media Foundations",
		Topic:       "Editing",
		Duration:    "90",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCTEPlan(&buf, "", plan))
	output := buf.String()
	assert.Contains(t, output, "## Procedures")
	assert.Contains(t, output, "### Lesson Evaluation / Teacher Reflection")
	assert.NotContains(t, output, "- [")
}
