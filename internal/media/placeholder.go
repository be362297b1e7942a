package media

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/hsmedia/lessonpack/internal/document"
)

const (
	placeholderWidth  = 1200
	placeholderHeight = 675
	placeholderBar    = 16
)

// WritePlaceholder draws a theme-colored stand-in for a slide whose photo
// lookup came up empty and saves it as a PNG at path.
func WritePlaceholder(theme document.Theme, label, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}

	dc := gg.NewContext(placeholderWidth, placeholderHeight)
	dc.SetHexColor(theme.Secondary)
	dc.Clear()

	dc.SetHexColor(theme.Primary)
	dc.DrawRectangle(0, 0, placeholderWidth, placeholderBar)
	dc.Fill()
	dc.SetHexColor(theme.Accent)
	dc.DrawRectangle(0, placeholderHeight-placeholderBar, placeholderWidth, placeholderBar)
	dc.Fill()

	dc.SetHexColor(theme.Primary)
	dc.DrawStringAnchored(label, placeholderWidth/2, placeholderHeight/2, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("dc.SavePNG(%s) > %w", path, err)
	}
	return nil
}
