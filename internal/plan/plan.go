package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// WeekPlan is one week of lessons parsed from the input JSON document.
type WeekPlan struct {
	Week                FlexString    `json:"week" validate:"required"`
	Unit                string        `json:"unit" validate:"required"`
	WeekFocus           string        `json:"week_focus"`
	WeekOverview        string        `json:"week_overview"`
	WeekObjectives      []string      `json:"week_objectives"`
	WeekMaterials       []string      `json:"week_materials"`
	FormativeAssessment string        `json:"formative_assessment"`
	SummativeAssessment string        `json:"summative_assessment"`
	WeeklyDeliverable   string        `json:"weekly_deliverable"`
	VocabularySummary   Entries       `json:"vocabulary_summary"`
	TeacherNotes        []string      `json:"teacher_notes"`
	StandardsAlignment  string        `json:"standards_alignment"`
	Days                []DayPlan     `json:"days" validate:"omitempty,dive"`
	StudentHandouts     []HandoutSpec `json:"student_handouts" validate:"omitempty,dive"`
	SkipPresentations   bool          `json:"skip_presentations"`

	// Source names where the document came from: a file path or "inline JSON"
	Source string `json:"-"`
	// SingleLesson marks a document without a days list that was read as a
	// single lesson instead
	SingleLesson bool `json:"-"`
}

// DayPlan is one lesson day inside a week.
type DayPlan struct {
	Topic                 string     `json:"topic" validate:"required"`
	DayLabel              string     `json:"day_label"`
	Duration              FlexString `json:"duration"`
	Objectives            []string   `json:"objectives" validate:"min=1,dive,required"`
	Overview              string     `json:"overview"`
	DayMaterials          []string   `json:"day_materials"`
	Schedule              []Activity `json:"schedule"`
	Vocabulary            Entries    `json:"vocabulary"`
	Differentiation       Entries    `json:"differentiation"`
	TeacherNotes          string     `json:"teacher_notes"`
	ContentStandards      string     `json:"content_standards"`
	EmbeddedCredit        string     `json:"embedded_credit"`
	LessonEvaluation      string     `json:"lesson_evaluation"`
	Procedures            string     `json:"procedures"`
	IndividualDifferences string     `json:"individual_differences"`

	// Explicit tag lists. A key present in the input replaces keyword
	// inference for that taxonomy even when its list is empty; nil means the
	// key was absent.
	Materials  []string `json:"materials"`
	Methods    []string `json:"methods"`
	Assessment []string `json:"assessment"`
	Curriculum []string `json:"curriculum"`
	OtherAreas []string `json:"other_areas"`
}

// Activity is one scheduled block of a lesson day.
type Activity struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandoutSpec describes one student handout to generate for the week.
type HandoutSpec struct {
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Instructions string    `json:"instructions"`
	Sections     []Section `json:"sections"`
	Questions    []string  `json:"questions"`
	Vocabulary   Entries   `json:"vocabulary"`
	Tips         []string  `json:"tips"`
}

// Section is one content block of a student handout.
type Section struct {
	Heading    string   `json:"heading"`
	Content    string   `json:"content"`
	Items      []string `json:"items"`
	Numbered   bool     `json:"numbered"`
	BlankLines int      `json:"blank_lines"`
}

var defaultDayLabels = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Label returns the display name for the day at position index within the
// week, defaulting to weekday names for the first five days.
func (day DayPlan) Label(index int) string {
	if day.DayLabel != "" {
		return day.DayLabel
	}
	if index >= 0 && index < len(defaultDayLabels) {
		return defaultDayLabels[index]
	}
	return fmt.Sprintf("Day %d", index+1)
}

// DurationText returns the lesson duration in minutes, falling back to the
// course default when the day does not set one.
func (day DayPlan) DurationText(fallback string) string {
	if day.Duration != "" {
		return string(day.Duration)
	}
	return fallback
}

// KeywordText returns the lower-cased free text of a day used for keyword
// classification: topic, objectives, schedule names and descriptions, and
// teacher notes.
func (day DayPlan) KeywordText() string {
	parts := make([]string, 0, 2+len(day.Objectives)+2*len(day.Schedule))
	parts = append(parts, day.Topic)
	parts = append(parts, day.Objectives...)
	for _, activity := range day.Schedule {
		parts = append(parts, activity.Name, activity.Description)
	}
	parts = append(parts, day.TeacherNotes)
	return strings.ToLower(strings.Join(parts, " "))
}

// ExplicitTags returns the explicit tag list for a taxonomy and whether the
// input document contained the key at all.
func (day DayPlan) ExplicitTags(taxonomy string) ([]string, bool) {
	var tags []string
	switch taxonomy {
	case "materials":
		tags = day.Materials
	case "methods":
		tags = day.Methods
	case "assessment":
		tags = day.Assessment
	case "curriculum":
		tags = day.Curriculum
	case "other_areas":
		tags = day.OtherAreas
	default:
		return nil, false
	}
	if tags == nil {
		return nil, false
	}
	return tags, true
}

// FlexString decodes a JSON string or number into its string form. Week
// numbers and durations appear both ways in input documents.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return fmt.Errorf("json.Unmarshal() > %w", err)
		}
		*s = FlexString(value)
		return nil
	}
	var value json.Number
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return fmt.Errorf("json.Unmarshal() > %w", err)
	}
	*s = FlexString(value.String())
	return nil
}

// Entry is one key/value pair of an ordered JSON object.
type Entry struct {
	Key   string
	Value string
}

// Entries holds the pairs of a JSON object in document order. Vocabulary,
// differentiation and summary maps decode into Entries instead of a Go map
// so their rendering order follows the input.
type Entries []Entry

func (entries *Entries) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("decoder.Token() > %w", err)
	}
	if token == nil {
		*entries = nil
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", token)
	}

	result := make(Entries, 0)
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("decoder.Token() > %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", keyToken)
		}
		var value string
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("decoder.Decode(%q) > %w", key, err)
		}
		result = append(result, Entry{Key: key, Value: value})
	}
	*entries = result
	return nil
}

// Get returns the value for key and whether the key exists.
func (entries Entries) Get(key string) (string, bool) {
	for _, entry := range entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in document order.
func (entries Entries) Keys() []string {
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	return keys
}
