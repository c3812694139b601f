package decks

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type GridSpec struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type CardSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
}

type TimingSpec struct {
	HoverMs             int `yaml:"hover_ms"`
	FlipMs              int `yaml:"flip_ms"`
	MismatchDelayFrames int `yaml:"mismatch_delay_frames"`
}

type ColorsSpec struct {
	Background string `yaml:"background"`
	Back       string `yaml:"back"`
	Face       string `yaml:"face"`
	Border     string `yaml:"border"`
}

// DeckSpec describes one playable board: grid shape, card geometry, animation
// timing, and the symbol pool cards are paired from.
type DeckSpec struct {
	Name    string     `yaml:"name"`
	Grid    GridSpec   `yaml:"grid"`
	Card    CardSpec   `yaml:"card"`
	Timing  TimingSpec `yaml:"timing"`
	Colors  ColorsSpec `yaml:"colors"`
	Symbols []string   `yaml:"symbols"`
}

const (
	defaultHoverMs       = 200
	defaultFlipMs        = 300
	defaultMismatchDelay = 45
)

// LoadSpec reads and unmarshals a yaml spec by name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("decks: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("decks: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadDeck loads a deck spec, applies defaults, and validates it.
func LoadDeck(name string) (*DeckSpec, error) {
	spec, err := LoadSpec[DeckSpec](name)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("decks: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *DeckSpec) applyDefaults() {
	if s.Timing.HoverMs <= 0 {
		s.Timing.HoverMs = defaultHoverMs
	}
	if s.Timing.FlipMs <= 0 {
		s.Timing.FlipMs = defaultFlipMs
	}
	if s.Timing.MismatchDelayFrames <= 0 {
		s.Timing.MismatchDelayFrames = defaultMismatchDelay
	}
	if s.Name == "" {
		s.Name = "unnamed"
	}
}

// Validate checks that the grid can be filled with symbol pairs and that card
// geometry is drawable.
func (s *DeckSpec) Validate() error {
	cells := s.Grid.Rows * s.Grid.Cols
	if s.Grid.Rows <= 0 || s.Grid.Cols <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", s.Grid.Rows, s.Grid.Cols)
	}
	if cells < 2 || cells%2 != 0 {
		return fmt.Errorf("grid must hold an even number of cards >= 2, got %d", cells)
	}
	if len(s.Symbols) < cells/2 {
		return fmt.Errorf("need at least %d symbols for %d cards, got %d", cells/2, cells, len(s.Symbols))
	}
	if s.Card.Width <= 0 || s.Card.Height <= 0 {
		return fmt.Errorf("card size must be positive, got %gx%g", s.Card.Width, s.Card.Height)
	}
	if s.Card.Spacing < 0 {
		return fmt.Errorf("card spacing must not be negative, got %g", s.Card.Spacing)
	}
	return nil
}

// Pairs returns the number of symbol pairs on the board.
func (s *DeckSpec) Pairs() int {
	return s.Grid.Rows * s.Grid.Cols / 2
}

func (s *DeckSpec) HoverDuration() time.Duration {
	return time.Duration(s.Timing.HoverMs) * time.Millisecond
}

func (s *DeckSpec) FlipDuration() time.Duration {
	return time.Duration(s.Timing.FlipMs) * time.Millisecond
}
