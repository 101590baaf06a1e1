package achievement

import (
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/light-blaster/event"
	"github.com/lixenwraith/light-blaster/player"
)

//go:embed achievements.yaml
var embeddedYAML []byte

// Kind selects how a condition is checked
type Kind string

const (
	KindScore          Kind = "score"
	KindEvent          Kind = "event"
	KindCounter        Kind = "counter"
	KindEvolutionClass Kind = "evolution_class"
	KindPath           Kind = "path"
	KindBossTier       Kind = "boss_tier"
)

// Condition is the declarative unlock rule
type Condition struct {
	Kind      Kind    `yaml:"kind"`
	Threshold int     `yaml:"threshold,omitempty"`
	Event     string  `yaml:"event,omitempty"`
	Min       float64 `yaml:"min,omitempty"`
	Flag      string  `yaml:"flag,omitempty"`
	Counter   string  `yaml:"counter,omitempty"`
	Class     string  `yaml:"class,omitempty"`
	Path      string  `yaml:"path,omitempty"`
	Tier      int     `yaml:"tier,omitempty"`

	eventType event.EventType
}

// Definition is one achievement
type Definition struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Condition   Condition `yaml:"condition"`
}

type table struct {
	Version      int          `yaml:"version"`
	Achievements []Definition `yaml:"achievements"`
}

// Parse decodes and validates a rule table
func Parse(data []byte) ([]Definition, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse achievements: %w", err)
	}

	seen := make(map[string]bool, len(t.Achievements))
	for i := range t.Achievements {
		d := &t.Achievements[i]
		if d.ID == "" {
			return nil, fmt.Errorf("achievement %d: missing id", i)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("achievement %s: duplicate id", d.ID)
		}
		seen[d.ID] = true
		if err := d.Condition.compile(); err != nil {
			return nil, fmt.Errorf("achievement %s: %w", d.ID, err)
		}
	}
	return t.Achievements, nil
}

func (c *Condition) compile() error {
	switch c.Kind {
	case KindScore, KindCounter, KindEvolutionClass:
		if c.Threshold <= 0 {
			return fmt.Errorf("%s condition needs a positive threshold", c.Kind)
		}
		if c.Kind == KindCounter && c.Counter == "" {
			return fmt.Errorf("counter condition needs a counter name")
		}
		if c.Kind == KindEvolutionClass && c.Class == "" {
			return fmt.Errorf("evolution_class condition needs a class")
		}
	case KindEvent:
		et, ok := event.GetEventType(c.Event)
		if !ok {
			return fmt.Errorf("unknown event %q", c.Event)
		}
		c.eventType = et
	case KindPath:
		if player.ParsePath(c.Path) == player.PathNone {
			return fmt.Errorf("unknown path %q", c.Path)
		}
	case KindBossTier:
		if c.Tier <= 0 {
			return fmt.Errorf("boss_tier condition needs a positive tier")
		}
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}
	return nil
}

// Defaults returns the built-in rule table
func Defaults() []Definition {
	defs, err := Parse(embeddedYAML)
	if err != nil {
		log.Printf("[achievement] built-in table invalid: %v", err)
		return nil
	}
	return defs
}
