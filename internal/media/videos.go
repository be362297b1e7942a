package media

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hsmedia/lessonpack/internal/document"
)

//go:embed videos.yml
var rawVideos []byte

var curatedVideos = mustParseVideos(rawVideos)

// CuratedVideo is one row of the embedded reference table.
type CuratedVideo struct {
	Keyword string `yaml:"keyword"`
	Title   string `yaml:"title"`
	Channel string `yaml:"channel,omitempty"`
	URL     string `yaml:"url"`
}

func mustParseVideos(data []byte) []CuratedVideo {
	var parsed struct {
		Videos []CuratedVideo `yaml:"videos"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		panic(fmt.Sprintf("parse embedded video table: %v", err))
	}
	return parsed.Videos
}

// Curated matches lesson topics against the embedded video table.
type Curated struct {
	videos []CuratedVideo
}

func NewCurated() *Curated {
	return &Curated{videos: curatedVideos}
}

// FindVideo returns the first table row matching topic. The first pass
// looks for the keyword and topic containing one another, the second for
// any longer topic word appearing inside a keyword. Both passes walk the
// table in order. A blank topic or no match returns nil.
func (curated *Curated) FindVideo(topic string) *document.VideoRef {
	normalized := strings.TrimSpace(strings.ToLower(topic))
	if normalized == "" {
		return nil
	}

	for _, video := range curated.videos {
		if strings.Contains(normalized, video.Keyword) || strings.Contains(video.Keyword, normalized) {
			return video.ref()
		}
	}

	words := strings.Fields(normalized)
	for _, video := range curated.videos {
		for _, word := range words {
			if len(word) > 3 && strings.Contains(video.Keyword, word) {
				return video.ref()
			}
		}
	}
	return nil
}

func (video CuratedVideo) ref() *document.VideoRef {
	return &document.VideoRef{
		Title:   video.Title,
		Channel: video.Channel,
		URL:     video.URL,
	}
}
