package decks

import (
	"strings"
	"testing"
	"time"
)

func TestLoadEmbeddedDecks(t *testing.T) {
	cases := []struct {
		name  string
		deck  string
		rows  int
		cols  int
		pairs int
	}{
		{"default", "default", 4, 4, 8},
		{"default_with_extension", "default.yaml", 4, 4, 8},
		{"big", "big", 4, 6, 12},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := LoadDeck(c.deck)
			if err != nil {
				t.Fatalf("LoadDeck(%q) failed: %v", c.deck, err)
			}
			if spec.Grid.Rows != c.rows || spec.Grid.Cols != c.cols {
				t.Fatalf("expected %dx%d grid, got %dx%d", c.rows, c.cols, spec.Grid.Rows, spec.Grid.Cols)
			}
			if spec.Pairs() != c.pairs {
				t.Fatalf("expected %d pairs, got %d", c.pairs, spec.Pairs())
			}
			if len(spec.Symbols) < spec.Pairs() {
				t.Fatalf("deck has too few symbols: %d for %d pairs", len(spec.Symbols), spec.Pairs())
			}
		})
	}
}

func TestLoadDeckMissing(t *testing.T) {
	if _, err := LoadDeck("no_such_deck"); err == nil {
		t.Fatalf("expected error for missing deck")
	}
}

func TestDeckSpecDefaults(t *testing.T) {
	spec := DeckSpec{
		Grid:    GridSpec{Rows: 2, Cols: 2},
		Card:    CardSpec{Width: 10, Height: 10},
		Symbols: []string{"A", "B"},
	}
	spec.applyDefaults()

	if spec.HoverDuration() != 200*time.Millisecond {
		t.Fatalf("expected default hover duration, got %v", spec.HoverDuration())
	}
	if spec.FlipDuration() != 300*time.Millisecond {
		t.Fatalf("expected default flip duration, got %v", spec.FlipDuration())
	}
	if spec.Timing.MismatchDelayFrames != defaultMismatchDelay {
		t.Fatalf("expected default mismatch delay, got %d", spec.Timing.MismatchDelayFrames)
	}
	if spec.Name != "unnamed" {
		t.Fatalf("expected default name, got %q", spec.Name)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("expected valid spec, got %v", err)
	}
}

func TestDeckSpecValidate(t *testing.T) {
	valid := func() DeckSpec {
		return DeckSpec{
			Grid:    GridSpec{Rows: 2, Cols: 3},
			Card:    CardSpec{Width: 50, Height: 70, Spacing: 5},
			Symbols: []string{"A", "B", "C"},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*DeckSpec)
		wantErr string
	}{
		{"valid", func(*DeckSpec) {}, ""},
		{"zero_rows", func(s *DeckSpec) { s.Grid.Rows = 0 }, "grid must be positive"},
		{"odd_cells", func(s *DeckSpec) { s.Grid.Cols = 5; s.Symbols = []string{"A", "B", "C", "D", "E"} }, "even number"},
		{"too_few_symbols", func(s *DeckSpec) { s.Symbols = []string{"A"} }, "symbols"},
		{"zero_card_width", func(s *DeckSpec) { s.Card.Width = 0 }, "card size"},
		{"negative_spacing", func(s *DeckSpec) { s.Card.Spacing = -1 }, "spacing"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := valid()
			c.mutate(&spec)
			err := spec.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	for _, name := range []string{"score.tengo", "scripts/score.tengo", "decks/scripts/score.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q) failed: %v", name, err)
		}
		if !strings.Contains(string(data), "score") {
			t.Fatalf("script %q does not define a score", name)
		}
	}
}
