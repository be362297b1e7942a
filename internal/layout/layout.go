package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Slug caps for the document kinds that embed user text in filenames.
const (
	TopicSlugMax   = 25
	UnitSlugMax    = 20
	HandoutSlugMax = 25
)

// Slug makes a string safe for filenames: spaces to underscores, slashes to
// hyphens, truncated to max runes after replacement.
func Slug(s string, max int) string {
	slug := strings.ReplaceAll(s, " ", "_")
	slug = strings.ReplaceAll(slug, "/", "-")
	runes := []rune(slug)
	if len(runes) > max {
		return string(runes[:max])
	}
	return slug
}

// WeekDir names the output folder for a week. Numeric weeks are zero-padded
// to two digits, anything else is used as-is.
func WeekDir(week string) string {
	if n, err := strconv.Atoi(week); err == nil {
		return fmt.Sprintf("Week%02d", n)
	}
	return "Week" + week
}

func CTEPlanName(day int, topic string) string {
	return fmt.Sprintf("Day%d_%s_CTE.md", day, Slug(topic, TopicSlugMax))
}

func PresentationName(day int, topic string) string {
	return fmt.Sprintf("Day%d_%s_Presentation.md", day, Slug(topic, TopicSlugMax))
}

func TeacherHandoutName(week, unit string) string {
	return fmt.Sprintf("Week%s_%s_TeacherHandout.md", week, Slug(unit, UnitSlugMax))
}

func StudentHandoutName(name string) string {
	return fmt.Sprintf("%s_StudentHandout.md", Slug(name, HandoutSlugMax))
}

func BellRingerName(week string) string {
	return fmt.Sprintf("Week%s_BellRinger_Slides.md", week)
}

func MediaLogName(week string) string {
	return fmt.Sprintf("Week%s_media_log.yaml", week)
}

// Manifest lists the files a generation run produced. Paths are relative to
// WeekDir.
type Manifest struct {
	WeekDir         string
	CTEPlans        []string
	PDFs            []string
	TeacherHandout  string
	StudentHandouts []string
	Presentations   []string
	BellRinger      string
	MediaLog        string
}

// Files returns every produced file in report order.
func (manifest Manifest) Files() []string {
	var files []string
	files = append(files, manifest.CTEPlans...)
	files = append(files, manifest.PDFs...)
	if manifest.TeacherHandout != "" {
		files = append(files, manifest.TeacherHandout)
	}
	files = append(files, manifest.StudentHandouts...)
	files = append(files, manifest.Presentations...)
	if manifest.BellRinger != "" {
		files = append(files, manifest.BellRinger)
	}
	if manifest.MediaLog != "" {
		files = append(files, manifest.MediaLog)
	}
	return files
}
