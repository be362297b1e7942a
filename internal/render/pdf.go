package render

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// boldPattern matches **bold** spans in markdown
var boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// imagePattern matches markdown image references and captures alt text and target
var imagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// ConvertMarkdownToPDF renders a generated markdown document to a PDF
// placed next to it and returns the PDF path.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}
	content = preparePDFSource(content, filepath.Dir(markdownPath))

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	renderer.UpdateBlockquoteStyler()
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// preparePDFSource rewrites markdown constructs mdtopdf cannot take as-is.
// Handout cards and notes are blockquotes with bold term leads, and the
// blockquote multiCell does not render inline bold, so those markers are
// stripped (blockquote text is styled italic already). Deck image targets
// are relative to the week directory and get anchored to baseDir, since
// mdtopdf resolves them against the working directory.
func preparePDFSource(content []byte, baseDir string) []byte {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "> ") {
			line = boldPattern.ReplaceAllString(line, "$1")
		}
		lines[i] = imagePattern.ReplaceAllStringFunc(line, func(ref string) string {
			groups := imagePattern.FindStringSubmatch(ref)
			target := groups[2]
			if strings.Contains(target, "://") || filepath.IsAbs(target) {
				return ref
			}
			return fmt.Sprintf("![%s](%s)", groups[1], filepath.Join(baseDir, filepath.FromSlash(target)))
		})
	}
	return []byte(strings.Join(lines, "\n"))
}
