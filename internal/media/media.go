package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hsmedia/lessonpack/internal/document"
)

//go:generate mockgen -source=media.go -destination=../mocks/media/mock_media.go -package=mock_media

// Image is one fetched photo: the ladder query that hit, its source URL
// and the downloaded bytes.
type Image struct {
	Query string
	URL   string
	Data  []byte
}

// ImageFinder walks an image request's query ladder and returns the first
// hit, or nil without an error when every query misses.
type ImageFinder interface {
	FindImage(ctx context.Context, queries []string) (*Image, error)
}

// VideoFinder resolves a topic against the curated video table. A miss
// returns nil.
type VideoFinder interface {
	FindVideo(topic string) *document.VideoRef
}

// Resolver satisfies the media requests of a deck: downloaded photos for
// image slots with generated placeholders as fallback, and curated video
// references. A nil ImageFinder disables photo search and every image slot
// gets a placeholder.
type Resolver struct {
	images ImageFinder
	videos VideoFinder
}

func NewResolver(images ImageFinder, videos VideoFinder) *Resolver {
	return &Resolver{
		images: images,
		videos: videos,
	}
}

// ResolveDeck fills every image and video request of deck in place and
// writes image files under weekDir. It never fails a deck: a missed or
// failed lookup degrades to a placeholder and a warning.
func (resolver *Resolver) ResolveDeck(ctx context.Context, deck *document.Deck, weekDir string) ([]Entry, []string) {
	var entries []Entry
	var warnings []string
	for i := range deck.Slides {
		slide := &deck.Slides[i]
		if slide.Image != nil {
			entry, warning := resolver.resolveImage(ctx, deck, slide, weekDir)
			if entry != nil {
				entries = append(entries, *entry)
			}
			if warning != "" {
				warnings = append(warnings, warning)
			}
		}
		if slide.Kind == document.SlideVideo && slide.VideoQuery != "" {
			if ref := resolver.videos.FindVideo(slide.VideoQuery); ref != nil {
				slide.Video = ref
				entries = append(entries, Entry{Day: deck.Day, Kind: "video", Title: ref.Title, URL: ref.URL})
			} else {
				warnings = append(warnings, fmt.Sprintf("no curated video matches %q, keeping a placeholder video slide", slide.VideoQuery))
			}
		}
	}
	return entries, warnings
}

func (resolver *Resolver) resolveImage(ctx context.Context, deck *document.Deck, slide *document.Slide, weekDir string) (*Entry, string) {
	request := slide.Image

	var image *Image
	var err error
	if resolver.images != nil {
		image, err = resolver.images.FindImage(ctx, request.Queries)
	}
	if err == nil && image != nil {
		relative := imagePath(deck.Day, request.Slot, ".jpg")
		err = writeImage(filepath.Join(weekDir, relative), image.Data)
		if err == nil {
			slide.ImageRef = &document.ImageRef{Path: relative, URL: image.URL, Query: image.Query}
			return &Entry{Day: deck.Day, Kind: "image", Query: image.Query, URL: image.URL}, ""
		}
	}

	var warning string
	switch {
	case resolver.images == nil:
		slog.Debug("image search disabled, generating a placeholder", "slot", request.Slot)
	case err != nil:
		warning = fmt.Sprintf("image lookup for %q failed (%v), using a generated placeholder", request.Queries[0], err)
	default:
		warning = fmt.Sprintf("no image found for %q, using a generated placeholder", request.Queries[0])
	}

	relative := imagePath(deck.Day, request.Slot, ".png")
	if placeholderErr := WritePlaceholder(deck.Theme, slide.Title, filepath.Join(weekDir, relative)); placeholderErr != nil {
		return nil, fmt.Sprintf("placeholder image for slot %q failed: %v", request.Slot, placeholderErr)
	}
	slide.ImageRef = &document.ImageRef{Path: relative}
	return nil, warning
}

func imagePath(day int, slot, extension string) string {
	return filepath.Join("media", fmt.Sprintf("day%d_%s%s", day, slot, extension))
}

func writeImage(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
