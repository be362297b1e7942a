package document

import (
	"fmt"
	"strings"

	"github.com/hsmedia/lessonpack/internal/plan"
)

// SlideKind selects the layout of a deck slide.
type SlideKind string

const (
	SlideBellRinger SlideKind = "bell_ringer"
	SlideAgenda     SlideKind = "agenda"
	SlideObjectives SlideKind = "objectives"
	SlideVocabulary SlideKind = "vocabulary"
	SlideContent    SlideKind = "content"
	SlideVideo      SlideKind = "video"
	SlideActivity   SlideKind = "activity"
	SlideWrapUp     SlideKind = "wrap_up"
)

// A deck carries the topic-focus slide plus at most four more content
// slides derived from instruction activities.
const maxContentSlides = 5

const placeholderPrompt = "[Add Bell Ringer prompt]"

// ImageRequest asks the image collaborator for one picture. Queries is the
// search ladder, tried in order until a hit; Slot names the media file
// written next to the deck.
type ImageRequest struct {
	Slot    string
	Queries []string
}

// ImageRef points at a downloaded or generated image backing a slide.
type ImageRef struct {
	Path  string
	URL   string
	Query string
}

// VideoRef is one curated video reference.
type VideoRef struct {
	Title   string
	Channel string
	URL     string
}

// Slide is one slide of a presentation deck. Image and VideoQuery are
// requests filled in later by media resolution; a video slide whose Video
// stays nil renders a placeholder marker.
type Slide struct {
	Kind       SlideKind
	Title      string
	Subtitle   string
	Body       string
	Bullets    []string
	Items      []Item
	Image      *ImageRequest
	ImageRef   *ImageRef
	VideoQuery string
	Video      *VideoRef
}

// Deck is a renderable slide sequence. Day is zero for weekly decks.
type Deck struct {
	Title  string
	Week   string
	Day    int
	Theme  Theme
	Slides []Slide
}

// BuildPresentation lays out the full lesson deck for one day: bell ringer,
// agenda, objectives, vocabulary, the content slides, a video slide, one
// slide per practice activity, and the wrap-up.
func BuildPresentation(week *plan.WeekPlan, day plan.DayPlan, dayNum int) Deck {
	theme := ThemeFor(week.Unit)

	slides := []Slide{{
		Kind:     SlideBellRinger,
		Title:    "BELL RINGER",
		Subtitle: fmt.Sprintf("Week %s • %s", week.Week, day.Label(dayNum-1)),
		Body:     bellRingerPrompt(day),
	}}

	var agenda []Item
	for _, activity := range day.Schedule {
		if activity.Time != "" && activity.Name != "" {
			agenda = append(agenda, Item{Term: activity.Time, Text: activity.Name})
		}
	}
	slides = append(slides, Slide{Kind: SlideAgenda, Title: "TODAY'S AGENDA", Subtitle: day.Topic, Items: agenda})

	if len(day.Objectives) > 0 {
		slides = append(slides, Slide{
			Kind:    SlideObjectives,
			Title:   "LEARNING OBJECTIVES",
			Bullets: day.Objectives,
			Image:   imageRequest("objectives", day.Topic, theme.Keyword),
		})
	}

	if len(day.Vocabulary) > 0 {
		slides = append(slides, Slide{Kind: SlideVocabulary, Title: "KEY VOCABULARY", Items: entryItems(day.Vocabulary)})
	}

	focus := []string{fmt.Sprintf("Today's focus: %s", day.Topic)}
	focus = append(focus, firstN(day.Objectives, 3)...)
	slides = append(slides, Slide{
		Kind:    SlideContent,
		Title:   strings.ToUpper(day.Topic),
		Bullets: focus,
		Image:   imageRequest("focus", day.Topic, theme.Keyword),
	})

	content := 1
	for _, activity := range day.Schedule {
		if content >= maxContentSlides {
			break
		}
		if activity.Name == "" || classifyActivity(activity.Name) != kindInstruction {
			continue
		}
		slides = append(slides, Slide{
			Kind:  SlideContent,
			Title: strings.ToUpper(activity.Name),
			Body:  activity.Description,
			Image: imageRequest(fmt.Sprintf("content%d", content), day.Topic, theme.Keyword),
		})
		content++
	}

	slides = append(slides, Slide{Kind: SlideVideo, Title: "VIDEO", VideoQuery: day.Topic})

	for _, activity := range day.Schedule {
		if activity.Name == "" || classifyActivity(activity.Name) != kindPractice {
			continue
		}
		slides = append(slides, Slide{Kind: SlideActivity, Title: strings.ToUpper(activity.Name), Body: activity.Description})
	}

	takeaways := make([]string, 0, 3)
	for _, objective := range firstN(day.Objectives, 3) {
		takeaways = append(takeaways, truncate(objective, 60))
	}
	slides = append(slides, Slide{Kind: SlideWrapUp, Title: "WRAP-UP", Bullets: takeaways, Body: exitTicket(day)})

	return Deck{Title: day.Topic, Week: string(week.Week), Day: dayNum, Theme: theme, Slides: slides}
}

// BuildBellRinger lays out the weekly bell ringer deck, one slide per day.
// A week without days yields a deck with no slides.
func BuildBellRinger(week *plan.WeekPlan) Deck {
	slides := make([]Slide, 0, len(week.Days))
	for i, day := range week.Days {
		slides = append(slides, Slide{
			Kind:     SlideBellRinger,
			Title:    "BELL RINGER",
			Subtitle: fmt.Sprintf("Week %s • %s", week.Week, day.Label(i)),
			Body:     bellRingerPrompt(day),
		})
	}
	return Deck{Title: "Bell Ringers", Week: string(week.Week), Theme: ThemeFor(week.Unit), Slides: slides}
}

type activityKind int

const (
	kindInstruction activityKind = iota
	kindPractice
	kindAdmin
)

var practiceMarkers = []string{"practice", "activity", "hands-on", "work time", "project"}

var adminMarkers = []string{
	"bell ringer", "bellringer", "warm up", "warmup",
	"wrap", "exit", "reflection", "transition", "attendance", "clean up", "dismissal", "break",
}

// classifyActivity buckets a schedule entry by its name. Admin markers win
// over practice markers so a "Wrap-Up Activity" stays out of the activity
// slides; everything unmatched counts as instruction.
func classifyActivity(name string) activityKind {
	lower := strings.ToLower(name)
	for _, marker := range adminMarkers {
		if strings.Contains(lower, marker) {
			return kindAdmin
		}
	}
	for _, marker := range practiceMarkers {
		if strings.Contains(lower, marker) {
			return kindPractice
		}
	}
	return kindInstruction
}

var bellRingerMarkers = []string{"bell ringer", "bellringer", "warm up", "warmup"}

func bellRingerPrompt(day plan.DayPlan) string {
	for _, activity := range day.Schedule {
		name := strings.ToLower(activity.Name)
		for _, marker := range bellRingerMarkers {
			if strings.Contains(name, marker) {
				if activity.Description != "" {
					return activity.Description
				}
				return placeholderPrompt
			}
		}
	}
	return placeholderPrompt
}

var exitMarkers = []string{"wrap", "exit", "reflection"}

func exitTicket(day plan.DayPlan) string {
	for _, activity := range day.Schedule {
		name := strings.ToLower(activity.Name)
		for _, marker := range exitMarkers {
			if strings.Contains(name, marker) {
				if activity.Description != "" {
					return activity.Description
				}
				return "What did you learn today?"
			}
		}
	}
	return "What did you learn today?"
}

func imageRequest(slot, topic, unitKeyword string) *ImageRequest {
	return &ImageRequest{
		Slot: slot,
		Queries: []string{
			topic + " " + unitKeyword,
			topic + " film",
			topic + " video",
			topic,
		},
	}
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
