package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/cardboard/decks"
)

const defaultScriptName = "score.tengo"

// Scorer evaluates the deck scoring script against a finished board. The
// script sees `moves`, `pairs`, and `elapsed` (seconds) and must leave its
// result in `score`.
type Scorer struct {
	src []byte
}

// NewScorer loads the scoring script through the decks loader, so a disk copy
// under decks/scripts/ overrides the embedded default.
func NewScorer() (*Scorer, error) {
	src, err := decks.LoadScript(defaultScriptName)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", defaultScriptName, err)
	}
	return NewScorerFromSource(src), nil
}

// NewScorerFromSource wraps raw script source, used for hot reload and tests.
func NewScorerFromSource(src []byte) *Scorer {
	return &Scorer{src: src}
}

// Score runs the script. Any compile or runtime failure is returned; callers
// fall back to FallbackScore rather than losing the result.
func (s *Scorer) Score(moves, pairs int, elapsed float64) (int, error) {
	if s == nil || len(s.src) == 0 {
		return 0, fmt.Errorf("script: no scoring script loaded")
	}

	sc := tengo.NewScript(s.src)
	sc.SetImports(stdlib.GetModuleMap("math"))
	if err := sc.Add("moves", moves); err != nil {
		return 0, fmt.Errorf("script: bind moves: %w", err)
	}
	if err := sc.Add("pairs", pairs); err != nil {
		return 0, fmt.Errorf("script: bind pairs: %w", err)
	}
	if err := sc.Add("elapsed", elapsed); err != nil {
		return 0, fmt.Errorf("script: bind elapsed: %w", err)
	}

	compiled, err := sc.Run()
	if err != nil {
		return 0, fmt.Errorf("script: run scoring script: %w", err)
	}

	v := compiled.Get("score")
	if v == nil || v.IsUndefined() {
		return 0, fmt.Errorf("script: scoring script did not set score")
	}
	return v.Int(), nil
}

// FallbackScore is the rule used when the script cannot run: full credit for
// each pair minus a flat penalty per wasted move.
func FallbackScore(moves, pairs int) int {
	waste := moves - pairs
	if waste < 0 {
		waste = 0
	}
	score := pairs*100 - waste*10
	if score < 0 {
		return 0
	}
	return score
}
