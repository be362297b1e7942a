package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hsmedia/lessonpack/internal/document"
)

// WriteDeck renders a slide sequence as a markdown deck, one slide per
// "---"-separated section.
func WriteDeck(output io.Writer, deck document.Deck) error {
	sections := make([]string, 0, len(deck.Slides))
	for _, slide := range deck.Slides {
		sections = append(sections, renderSlide(slide))
	}
	if _, err := io.WriteString(output, strings.Join(sections, "\n\n---\n\n")+"\n"); err != nil {
		return fmt.Errorf("io.WriteString() > %w", err)
	}
	return nil
}

func renderSlide(slide document.Slide) string {
	parts := []string{"# " + slide.Title}
	if slide.Subtitle != "" {
		parts = append(parts, "**"+slide.Subtitle+"**")
	}
	if slide.Body != "" {
		parts = append(parts, slide.Body)
	}
	if len(slide.Bullets) > 0 {
		lines := make([]string, 0, len(slide.Bullets))
		for _, bullet := range slide.Bullets {
			lines = append(lines, "- "+bullet)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	if len(slide.Items) > 0 {
		parts = append(parts, bulletList(slide.Items))
	}
	if slide.Kind == document.SlideVideo {
		parts = append(parts, videoSection(slide))
	}
	if slide.ImageRef != nil {
		parts = append(parts, imageEmbed(slide))
	}
	return strings.Join(parts, "\n\n")
}

func videoSection(slide document.Slide) string {
	if slide.Video == nil {
		return fmt.Sprintf("*Video placeholder: search YouTube for %q.*", slide.VideoQuery)
	}
	label := slide.Video.Title
	if slide.Video.Channel != "" {
		label = fmt.Sprintf("%s (%s)", slide.Video.Title, slide.Video.Channel)
	}
	return fmt.Sprintf("[%s](%s)", label, slide.Video.URL)
}

func imageEmbed(slide document.Slide) string {
	alt := slide.ImageRef.Query
	if alt == "" {
		alt = slide.Title
	}
	return fmt.Sprintf("![%s](%s)", alt, filepath.ToSlash(slide.ImageRef.Path))
}
