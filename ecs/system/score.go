package system

import (
	"log"
	"time"

	"github.com/milk9111/cardboard/ecs"
	"github.com/milk9111/cardboard/ecs/component"
	"github.com/milk9111/cardboard/save"
	"github.com/milk9111/cardboard/script"
)

// ScoreSystem folds board events into the GameState singleton and, on the
// winning event, runs the scoring script and persists an improved best.
type ScoreSystem struct {
	scorer *script.Scorer
	store  *save.Store
	now    func() time.Time
}

func NewScoreSystem(scorer *script.Scorer, store *save.Store) *ScoreSystem {
	return &ScoreSystem{
		scorer: scorer,
		store:  store,
		now:    time.Now,
	}
}

// SetScorer swaps the scoring script, used by hot reload.
func (s *ScoreSystem) SetScorer(scorer *script.Scorer) {
	if s == nil {
		return
	}
	s.scorer = scorer
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	boardEntity, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return
	}
	gs, ok := ecs.Get(w, boardEntity, component.GameStateComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventMatch:
			gs.Moves++
			gs.Matches++
		case ecs.EventMismatch:
			gs.Moves++
		case ecs.EventWin:
			s.finish(gs)
		}
	}
}

func (s *ScoreSystem) finish(gs *component.GameState) {
	gs.Won = true
	elapsed := s.now().Sub(gs.StartedAt).Seconds()

	score, err := s.scorer.Score(gs.Moves, gs.Pairs, elapsed)
	if err != nil {
		log.Printf("score: scoring script failed: %v (using fallback)", err)
		score = script.FallbackScore(gs.Moves, gs.Pairs)
	}
	gs.Score = score

	if _, err := s.store.RecordScore(gs.DeckName, score); err != nil {
		log.Printf("score: failed to persist record: %v", err)
	}
	gs.Best = s.store.Best(gs.DeckName)
}
