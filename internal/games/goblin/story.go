package goblin

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Dialogue keys that are not levels.
const (
	EpilogueKey = 4
	DefeatKey   = 99
)

//go:embed story.yaml
var storyYAML []byte

// Story holds the text content of the game.
type Story struct {
	Dialogue map[int][]string `yaml:"dialogue"`
	Credits  []Credit         `yaml:"credits"`
	Footer   string           `yaml:"footer"`
}

// Credit is one row of the credits screen.
type Credit struct {
	Role  string `yaml:"role"`
	Names string `yaml:"names"`
}

// NameList splits the comma-separated names.
func (c Credit) NameList() []string {
	parts := strings.Split(c.Names, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

var (
	storyOnce  sync.Once
	storyCache Story
	storyErr   error
)

// ParseStory decodes story YAML.
func ParseStory(data []byte) (Story, error) {
	var s Story
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Story{}, fmt.Errorf("goblin: parse story: %w", err)
	}
	if s.Dialogue == nil {
		s.Dialogue = make(map[int][]string)
	}
	return s, nil
}

// LoadStory returns the embedded story, parsed once.
func LoadStory() (Story, error) {
	storyOnce.Do(func() {
		storyCache, storyErr = ParseStory(storyYAML)
	})
	return storyCache, storyErr
}
