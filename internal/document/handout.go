package document

import (
	"fmt"

	"github.com/hsmedia/lessonpack/internal/plan"
)

// NodeKind selects how a handout block is rendered.
type NodeKind string

const (
	KindBanner    NodeKind = "banner"    // document header: Text title, Subtext subtitle
	KindHeading   NodeKind = "heading"   // section header: Text, Level 1 or 2
	KindCard      NodeKind = "card"      // shaded box, one Item per line with optional bold Term
	KindBadges    NodeKind = "badges"    // numbered badge list
	KindChecklist NodeKind = "checklist" // checkable [ ] items
	KindInline    NodeKind = "inline"    // single line of separator-joined values
	KindTable     NodeKind = "table"     // Rows, first row is the header
	KindCards     NodeKind = "cards"     // labeled card grid (Term + Text per card)
	KindColumns   NodeKind = "columns"   // side-by-side labeled columns
	KindList      NodeKind = "list"      // plain bulleted list
	KindNote      NodeKind = "note"      // sticky-note box
	KindBlanks    NodeKind = "blanks"    // Count writing lines of Width underscores
	KindQuestions NodeKind = "questions" // numbered questions, each with Count answer lines
	KindFootnote  NodeKind = "footnote"  // small print
	KindRule      NodeKind = "rule"      // horizontal separator
)

// Item is one entry of a list-like node. Term is an optional bold lead.
type Item struct {
	Term string
	Text string
}

// Node is one block of a handout document tree.
type Node struct {
	Kind    NodeKind
	Text    string
	Subtext string
	Level   int
	Count   int
	Width   int
	Items   []Item
	Rows    [][]string
}

// Handout is a renderable section-node document.
type Handout struct {
	Title string
	Theme Theme
	Nodes []Node
}

// BuildTeacherHandout lays out the weekly teacher guide: week header,
// overview, objectives, materials and assessment sections, one block per
// day, then the week vocabulary summary, teacher notes and standards
// footer. Sections without data are left out.
func BuildTeacherHandout(week *plan.WeekPlan, course Course) Handout {
	nodes := []Node{{
		Kind:    KindBanner,
		Text:    week.Unit,
		Subtext: fmt.Sprintf("Week %s • %s • Teacher Guide", week.Week, course.Title),
	}}

	if week.WeekFocus != "" || week.WeekOverview != "" {
		nodes = append(nodes, heading(1, "Week Overview"))
		var items []Item
		if week.WeekFocus != "" {
			items = append(items, Item{Term: "Focus", Text: week.WeekFocus})
		}
		if week.WeekOverview != "" {
			items = append(items, Item{Text: week.WeekOverview})
		}
		nodes = append(nodes, Node{Kind: KindCard, Items: items})
	}

	if len(week.WeekObjectives) > 0 {
		nodes = append(nodes, heading(1, "Weekly Learning Objectives"))
		nodes = append(nodes, Node{Kind: KindBadges, Items: textItems(week.WeekObjectives)})
	}

	if len(week.WeekMaterials) > 0 {
		nodes = append(nodes, heading(1, "Materials Needed for the Week"))
		nodes = append(nodes, Node{Kind: KindChecklist, Items: textItems(week.WeekMaterials)})
	}

	assessments := []Item{}
	for _, card := range []Item{
		{Term: "Formative", Text: week.FormativeAssessment},
		{Term: "Summative", Text: week.SummativeAssessment},
		{Term: "Deliverable", Text: week.WeeklyDeliverable},
	} {
		if card.Text != "" {
			assessments = append(assessments, card)
		}
	}
	if len(assessments) > 0 {
		nodes = append(nodes, heading(1, "Assessment Overview"))
		nodes = append(nodes, Node{Kind: KindCards, Items: assessments})
	}

	for i, day := range week.Days {
		nodes = append(nodes, dayNodes(day, i, course)...)
	}

	if len(week.VocabularySummary) > 0 {
		nodes = append(nodes, Node{Kind: KindRule})
		nodes = append(nodes, heading(1, "Week Vocabulary Summary"))
		nodes = append(nodes, Node{Kind: KindCards, Items: entryItems(week.VocabularySummary)})
	}

	if len(week.TeacherNotes) > 0 {
		nodes = append(nodes, heading(1, "Teacher Notes"))
		nodes = append(nodes, Node{Kind: KindNote, Items: textItems(week.TeacherNotes)})
	}

	if week.StandardsAlignment != "" {
		nodes = append(nodes, heading(1, "Standards Alignment"))
		nodes = append(nodes, Node{Kind: KindFootnote, Text: week.StandardsAlignment})
	}

	return Handout{Title: week.Unit, Theme: ThemeFor(week.Unit), Nodes: nodes}
}

func dayNodes(day plan.DayPlan, index int, course Course) []Node {
	nodes := []Node{
		{Kind: KindRule},
		heading(1, fmt.Sprintf("Day %d • %s: %s", index+1, day.Label(index), day.Topic)),
	}

	if len(day.Objectives) > 0 {
		nodes = append(nodes, heading(2, "Learning Objectives"))
		nodes = append(nodes, Node{Kind: KindCard, Items: textItems(day.Objectives)})
	}

	if len(day.DayMaterials) > 0 {
		nodes = append(nodes, heading(2, "Materials"))
		nodes = append(nodes, Node{Kind: KindInline, Items: textItems(day.DayMaterials)})
	}

	if len(day.Schedule) > 0 {
		nodes = append(nodes, heading(2, fmt.Sprintf("Schedule (%s minutes)", day.DurationText(course.Duration))))
		rows := [][]string{{"Time", "Activity", "Details"}}
		for _, activity := range day.Schedule {
			rows = append(rows, []string{activity.Time, activity.Name, activity.Description})
		}
		nodes = append(nodes, Node{Kind: KindTable, Rows: rows})
	}

	if len(day.Vocabulary) > 0 {
		nodes = append(nodes, heading(2, "Key Vocabulary"))
		nodes = append(nodes, Node{Kind: KindCards, Items: entryItems(day.Vocabulary)})
	}

	if len(day.Differentiation) > 0 {
		nodes = append(nodes, heading(2, "Differentiation Strategies"))
		nodes = append(nodes, Node{Kind: KindColumns, Items: entryItems(day.Differentiation)})
	}

	if day.TeacherNotes != "" {
		nodes = append(nodes, heading(2, "Teacher Notes"))
		nodes = append(nodes, Node{Kind: KindNote, Items: []Item{{Text: day.TeacherNotes}}})
	}

	return nodes
}

// BuildStudentHandout lays out one student worksheet: banner, instructions
// card, the content sections with their items and writing lines, then the
// questions, vocabulary and tips blocks.
func BuildStudentHandout(spec plan.HandoutSpec) Handout {
	title := spec.Title
	if title == "" {
		title = "Student Handout"
	}
	nodes := []Node{{Kind: KindBanner, Text: title, Subtext: spec.Subtitle}}

	if spec.Instructions != "" {
		nodes = append(nodes, heading(1, "Instructions"))
		nodes = append(nodes, Node{Kind: KindCard, Items: []Item{{Text: spec.Instructions}}})
	}

	for _, section := range spec.Sections {
		sectionHeading := section.Heading
		if sectionHeading == "" {
			sectionHeading = "Content"
		}
		nodes = append(nodes, heading(1, sectionHeading))
		if section.Content != "" {
			nodes = append(nodes, Node{Kind: KindCard, Items: []Item{{Text: section.Content}}})
		}
		if len(section.Items) > 0 {
			kind := KindList
			if section.Numbered {
				kind = KindBadges
			}
			nodes = append(nodes, Node{Kind: kind, Items: textItems(section.Items)})
		}
		if section.BlankLines > 0 {
			nodes = append(nodes, Node{Kind: KindBlanks, Count: section.BlankLines, Width: 85})
		}
	}

	if len(spec.Questions) > 0 {
		nodes = append(nodes, heading(1, "Questions"))
		nodes = append(nodes, Node{Kind: KindQuestions, Items: textItems(spec.Questions), Count: 3, Width: 80})
	}

	if len(spec.Vocabulary) > 0 {
		nodes = append(nodes, heading(1, "Vocabulary"))
		nodes = append(nodes, Node{Kind: KindCards, Items: entryItems(spec.Vocabulary)})
	}

	if len(spec.Tips) > 0 {
		nodes = append(nodes, heading(1, "Tips & Notes"))
		nodes = append(nodes, Node{Kind: KindNote, Items: textItems(spec.Tips)})
	}

	return Handout{Title: title, Theme: DefaultTheme, Nodes: nodes}
}

func heading(level int, text string) Node {
	return Node{Kind: KindHeading, Level: level, Text: text}
}

func textItems(values []string) []Item {
	items := make([]Item, 0, len(values))
	for _, value := range values {
		items = append(items, Item{Text: value})
	}
	return items
}

func entryItems(entries plan.Entries) []Item {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, Item{Term: entry.Key, Text: entry.Value})
	}
	return items
}
