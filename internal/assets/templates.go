package assets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// templateFuncs are the helpers available to embedded and override templates.
var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// parseTemplateWithFallback parses the override file at templatePath when
// one is configured, falling back to the embedded template named
// fallbackName. A broken override is logged and skipped, not returned as
// an error.
func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(templateFuncs).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			// TODO: replace a logger with an argument
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(templateFuncs).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
