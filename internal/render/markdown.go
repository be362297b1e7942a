package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hsmedia/lessonpack/internal/document"
)

// WriteHandout renders a handout node tree as a markdown document. Nodes
// that carry no content are left out.
func WriteHandout(output io.Writer, handout document.Handout) error {
	blocks := make([]string, 0, len(handout.Nodes))
	for _, node := range handout.Nodes {
		block := renderNode(node)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	if _, err := io.WriteString(output, strings.Join(blocks, "\n\n")+"\n"); err != nil {
		return fmt.Errorf("io.WriteString() > %w", err)
	}
	return nil
}

func renderNode(node document.Node) string {
	switch node.Kind {
	case document.KindBanner:
		if node.Subtext == "" {
			return "# " + node.Text
		}
		return fmt.Sprintf("# %s\n\n**%s**", node.Text, node.Subtext)
	case document.KindHeading:
		// The banner takes the top heading level, so sections start at "##".
		return strings.Repeat("#", node.Level+1) + " " + node.Text
	case document.KindCard:
		return blockquote(node.Items, false)
	case document.KindNote:
		return blockquote(node.Items, true)
	case document.KindBadges:
		return numberedList(node.Items)
	case document.KindChecklist:
		lines := make([]string, 0, len(node.Items))
		for _, item := range node.Items {
			lines = append(lines, "- [ ] "+itemText(item))
		}
		return strings.Join(lines, "\n")
	case document.KindInline:
		texts := make([]string, 0, len(node.Items))
		for _, item := range node.Items {
			texts = append(texts, itemText(item))
		}
		return strings.Join(texts, " • ")
	case document.KindTable:
		return pipeTable(node.Rows)
	case document.KindCards, document.KindList:
		return bulletList(node.Items)
	case document.KindColumns:
		return columnTable(node.Items)
	case document.KindBlanks:
		return writingLines(node.Count, node.Width)
	case document.KindQuestions:
		return questionBlocks(node.Items, node.Count, node.Width)
	case document.KindFootnote:
		if node.Text == "" {
			return ""
		}
		return "*" + node.Text + "*"
	case document.KindRule:
		return "---"
	}
	return ""
}

// itemText formats one list entry, with the optional term as a bold lead.
func itemText(item document.Item) string {
	if item.Term == "" {
		return item.Text
	}
	if item.Text == "" {
		return "**" + item.Term + "**"
	}
	return fmt.Sprintf("**%s:** %s", item.Term, item.Text)
}

// blockquote keeps each item in its own paragraph so lines do not run
// together when the markdown is rendered.
func blockquote(items []document.Item, italic bool) string {
	lines := make([]string, 0, 2*len(items))
	for i, item := range items {
		if i > 0 {
			lines = append(lines, ">")
		}
		text := itemText(item)
		if italic {
			text = "*" + text + "*"
		}
		lines = append(lines, "> "+text)
	}
	return strings.Join(lines, "\n")
}

func bulletList(items []document.Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+itemText(item))
	}
	return strings.Join(lines, "\n")
}

func numberedList(items []document.Item) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, itemText(item)))
	}
	return strings.Join(lines, "\n")
}

func pipeTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "| "+strings.Join(rows[0], " | ")+" |")
	separators := make([]string, len(rows[0]))
	for i := range separators {
		separators[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(separators, " | ")+" |")
	for _, row := range rows[1:] {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return strings.Join(lines, "\n")
}

// columnTable lays labeled columns side by side, terms as the header row.
func columnTable(items []document.Item) string {
	if len(items) == 0 {
		return ""
	}
	header := make([]string, 0, len(items))
	body := make([]string, 0, len(items))
	for _, item := range items {
		header = append(header, item.Term)
		body = append(body, item.Text)
	}
	return pipeTable([][]string{header, body})
}

// writingLines separates each ruled line with a blank line so they stay
// distinct paragraphs on paper.
func writingLines(count, width int) string {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		lines = append(lines, strings.Repeat("_", width))
	}
	return strings.Join(lines, "\n\n")
}

func questionBlocks(items []document.Item, count, width int) string {
	blocks := make([]string, 0, len(items))
	for i, item := range items {
		blocks = append(blocks, fmt.Sprintf("%d. %s\n\n%s", i+1, itemText(item), writingLines(count, width)))
	}
	return strings.Join(blocks, "\n\n")
}
