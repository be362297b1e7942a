package assets

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/hsmedia/lessonpack/internal/document"
)

//go:embed cte-plan.md.go.tmpl
var fallbackCTETemplate string

// WriteCTEPlan renders the CTE lesson-plan form for one day as markdown.
// A non-empty templatePath overrides the embedded layout; an unusable
// override falls back to the embedded one.
func WriteCTEPlan(output io.Writer, templatePath string, plan document.CTEPlan) error {
	tmpl, err := parseTemplateWithFallback(templatePath, "cte-plan.md.go.tmpl", fallbackCTETemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, plan); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
