package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SourceInline names plans passed directly on the command line.
const SourceInline = "inline JSON"

// Load reads a week plan from a CLI argument holding either inline JSON or
// the path of a JSON file.
func Load(arg string) (*WeekPlan, error) {
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return nil, fmt.Errorf("no input: pass a JSON document or a file path")
	}
	if strings.HasPrefix(trimmed, "{") {
		week, err := Parse([]byte(trimmed), SourceInline)
		if err != nil {
			return nil, fmt.Errorf("Parse() > %w", err)
		}
		return week, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", arg, err)
	}
	week, err := Parse(data, arg)
	if err != nil {
		return nil, fmt.Errorf("Parse(%s) > %w", arg, err)
	}
	return week, nil
}

// Parse decodes a week plan document. A document without a days key is read
// as a single lesson: its own fields become the one day of the plan.
func Parse(data []byte, source string) (*WeekPlan, error) {
	var probe struct {
		Days json.RawMessage `json:"days"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("json.Unmarshal() > %w", err)
	}
	if probe.Days == nil {
		return parseSingleLesson(data, source)
	}

	var week WeekPlan
	if err := json.Unmarshal(data, &week); err != nil {
		return nil, fmt.Errorf("json.Unmarshal() > %w", err)
	}
	week.Source = source
	return &week, nil
}

func parseSingleLesson(data []byte, source string) (*WeekPlan, error) {
	var header struct {
		Week FlexString `json:"week"`
		Unit string     `json:"unit"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("json.Unmarshal() > %w", err)
	}

	var day DayPlan
	if err := json.Unmarshal(data, &day); err != nil {
		return nil, fmt.Errorf("json.Unmarshal() > %w", err)
	}

	return &WeekPlan{
		Week:         header.Week,
		Unit:         header.Unit,
		Days:         []DayPlan{day},
		Source:       source,
		SingleLesson: true,
	}, nil
}
