package media

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry is one downloaded image or matched video of a generation run.
// Placeholders are not logged.
type Entry struct {
	Day   int    `yaml:"day"`
	Kind  string `yaml:"kind"`
	Query string `yaml:"query,omitempty"`
	Title string `yaml:"title,omitempty"`
	URL   string `yaml:"url"`
}

// Log is the weekly media manifest written next to the generated decks.
type Log struct {
	Week    string  `yaml:"week"`
	Unit    string  `yaml:"unit"`
	Entries []Entry `yaml:"entries"`
}

// WriteLog serializes the manifest as YAML. Callers skip it for runs that
// resolved no media.
func WriteLog(path string, log Log) error {
	data, err := yaml.Marshal(log)
	if err != nil {
		return fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
