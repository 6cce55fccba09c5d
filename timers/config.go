package timers

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ItemConfig declares one timer entry. Duration uses time.ParseDuration
// syntax ("90s", "5m30s").
type ItemConfig struct {
	Name     string `json:"name" yaml:"name"`
	Duration string `json:"duration" yaml:"duration"`
}

// Config declares a store's identity and fixed initial state. It is read
// once at construction; nothing is ever written back.
type Config struct {
	ID      string       `json:"id" yaml:"id"`
	Running bool         `json:"running" yaml:"running"`
	Items   []ItemConfig `json:"items" yaml:"items"`
}

// ParseConfig decodes a YAML config document and validates it.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks item names and durations.
func (c Config) Validate() error {
	for i, item := range c.Items {
		if item.Name == "" {
			return fmt.Errorf("item %d: empty name", i)
		}
		d, err := time.ParseDuration(item.Duration)
		if err != nil {
			return fmt.Errorf("item %q: bad duration: %w", item.Name, err)
		}
		if d < 0 {
			return fmt.Errorf("item %q: negative duration", item.Name)
		}
	}
	return nil
}

// InitialState converts the config into the store's initial State.
func (c Config) InitialState() (State, error) {
	if err := c.Validate(); err != nil {
		return State{}, err
	}

	state := State{Running: c.Running}
	if len(c.Items) > 0 {
		state.Items = make([]Item, 0, len(c.Items))
	}
	for _, item := range c.Items {
		d, _ := time.ParseDuration(item.Duration) // validated above
		state.Items = append(state.Items, Item{Name: item.Name, Duration: d})
	}
	return state, nil
}
