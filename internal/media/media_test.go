package media_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hsmedia/lessonpack/internal/document"
	"github.com/hsmedia/lessonpack/internal/media"
	mock_media "github.com/hsmedia/lessonpack/internal/mocks/media"
)

func testDeck() *document.Deck {
	return &document.Deck{
		Title: "Day 2: Camera Angles",
		Week:  "3",
		Day:   2,
		Theme: document.DefaultTheme,
		Slides: []document.Slide{
			{
				Kind:  document.SlideObjectives,
				Title: "LEARNING OBJECTIVES",
				Image: &document.ImageRequest{
					Slot:    "objectives",
					Queries: []string{"camera angles camera", "camera angles film"},
				},
			},
			{
				Kind:       document.SlideVideo,
				Title:      "VIDEO",
				VideoQuery: "Camera Angles",
			},
		},
	}
}

func TestResolver_ResolveDeck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	imageFinder := mock_media.NewMockImageFinder(ctrl)
	videoFinder := mock_media.NewMockVideoFinder(ctrl)

	imageFinder.EXPECT().
		FindImage(gomock.Any(), []string{"camera angles camera", "camera angles film"}).
		Return(&media.Image{
			Query: "camera angles camera",
			URL:   "https://images.example.com/1.jpg",
			Data:  []byte("jpeg"),
		}, nil)
	videoFinder.EXPECT().
		FindVideo("Camera Angles").
		Return(&document.VideoRef{
			Title:   "Camera Angles Explained",
			Channel: "StudioBinder",
			URL:     "https://www.youtube.com/watch?v=SlNviMsi0K0",
		})

	deck := testDeck()
	weekDir := t.TempDir()
	resolver := media.NewResolver(imageFinder, videoFinder)
	entries, warnings := resolver.ResolveDeck(context.Background(), deck, weekDir)

	assert.Empty(t, warnings)
	require.Len(t, entries, 2)
	assert.Equal(t, media.Entry{
		Day:   2,
		Kind:  "image",
		Query: "camera angles camera",
		URL:   "https://images.example.com/1.jpg",
	}, entries[0])
	assert.Equal(t, media.Entry{
		Day:   2,
		Kind:  "video",
		Title: "Camera Angles Explained",
		URL:   "https://www.youtube.com/watch?v=SlNviMsi0K0",
	}, entries[1])

	require.NotNil(t, deck.Slides[0].ImageRef)
	assert.Equal(t, filepath.Join("media", "day2_objectives.jpg"), deck.Slides[0].ImageRef.Path)
	assert.Equal(t, "camera angles camera", deck.Slides[0].ImageRef.Query)

	written, err := os.ReadFile(filepath.Join(weekDir, deck.Slides[0].ImageRef.Path))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), written)

	require.NotNil(t, deck.Slides[1].Video)
	assert.Equal(t, "Camera Angles Explained", deck.Slides[1].Video.Title)
}

func TestResolver_ResolveDeck_placeholderOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	imageFinder := mock_media.NewMockImageFinder(ctrl)
	videoFinder := mock_media.NewMockVideoFinder(ctrl)

	imageFinder.EXPECT().FindImage(gomock.Any(), gomock.Any()).Return(nil, nil)
	videoFinder.EXPECT().FindVideo("Camera Angles").Return(nil)

	deck := testDeck()
	weekDir := t.TempDir()
	resolver := media.NewResolver(imageFinder, videoFinder)
	entries, warnings := resolver.ResolveDeck(context.Background(), deck, weekDir)

	assert.Empty(t, entries)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "no image found")
	assert.Contains(t, warnings[1], "no curated video matches")

	require.NotNil(t, deck.Slides[0].ImageRef)
	assert.Equal(t, filepath.Join("media", "day2_objectives.png"), deck.Slides[0].ImageRef.Path)
	assert.Empty(t, deck.Slides[0].ImageRef.URL)
	assert.FileExists(t, filepath.Join(weekDir, deck.Slides[0].ImageRef.Path))

	assert.Nil(t, deck.Slides[1].Video)
}

func TestResolver_ResolveDeck_placeholderOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	imageFinder := mock_media.NewMockImageFinder(ctrl)
	videoFinder := mock_media.NewMockVideoFinder(ctrl)

	imageFinder.EXPECT().
		FindImage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("response error 500: upstream down"))
	videoFinder.EXPECT().FindVideo("Camera Angles").Return(&document.VideoRef{
		Title: "Camera Angles Explained",
		URL:   "https://www.youtube.com/watch?v=SlNviMsi0K0",
	})

	deck := testDeck()
	weekDir := t.TempDir()
	resolver := media.NewResolver(imageFinder, videoFinder)
	entries, warnings := resolver.ResolveDeck(context.Background(), deck, weekDir)

	require.Len(t, entries, 1)
	assert.Equal(t, "video", entries[0].Kind)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "image lookup")
	assert.Contains(t, warnings[0], "response error 500")

	require.NotNil(t, deck.Slides[0].ImageRef)
	assert.FileExists(t, filepath.Join(weekDir, deck.Slides[0].ImageRef.Path))
}

func TestResolver_ResolveDeck_imageSearchDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	videoFinder := mock_media.NewMockVideoFinder(ctrl)
	videoFinder.EXPECT().FindVideo("Camera Angles").Return(nil)

	deck := testDeck()
	weekDir := t.TempDir()
	resolver := media.NewResolver(nil, videoFinder)
	entries, warnings := resolver.ResolveDeck(context.Background(), deck, weekDir)

	assert.Empty(t, entries)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "no curated video matches")

	require.NotNil(t, deck.Slides[0].ImageRef)
	assert.Equal(t, filepath.Join("media", "day2_objectives.png"), deck.Slides[0].ImageRef.Path)
	assert.FileExists(t, filepath.Join(weekDir, deck.Slides[0].ImageRef.Path))
}
