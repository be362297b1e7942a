package plan

import (
	"fmt"
	"strings"
)

var handsOnKeywords = []string{"practice", "hands-on", "activity", "filming", "shoot"}

// DeriveOverview builds the overview paragraph for a day that does not
// provide one: a topic lead, a clause summarizing the objectives, and a
// clause naming the first hands-on activity of the schedule.
func DeriveOverview(day DayPlan) string {
	sentences := []string{fmt.Sprintf("Students will learn about %s.", day.Topic)}

	objectives := make([]string, 0, len(day.Objectives))
	for _, objective := range day.Objectives {
		if cleaned := cleanObjective(objective); cleaned != "" {
			objectives = append(objectives, cleaned)
		}
	}
	switch {
	case len(objectives) == 1:
		sentences = append(sentences, fmt.Sprintf("The primary objective is to %s.", objectives[0]))
	case len(objectives) == 2:
		sentences = append(sentences, fmt.Sprintf("Key objectives include %s and %s.", objectives[0], objectives[1]))
	case len(objectives) > 2:
		sentences = append(sentences, fmt.Sprintf("Key objectives include %s and %s, plus %d more.",
			objectives[0], objectives[1], len(objectives)-2))
	}

	for _, activity := range day.Schedule {
		if containsAny(strings.ToLower(activity.Name), handsOnKeywords) {
			sentences = append(sentences, fmt.Sprintf("Students will apply these skills during %s.", activity.Name))
			break
		}
	}

	return strings.Join(sentences, " ")
}

// cleanObjective turns an objective into clause form: lower-cased, trailing
// period and leading "students will"/"to" removed.
func cleanObjective(objective string) string {
	cleaned := strings.ToLower(strings.TrimSpace(objective))
	cleaned = strings.TrimSuffix(cleaned, ".")
	cleaned = strings.TrimPrefix(cleaned, "students will ")
	cleaned = strings.TrimPrefix(cleaned, "to ")
	return strings.TrimSpace(cleaned)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
