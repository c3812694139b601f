package system

import (
	"time"

	"github.com/milk9111/cardboard/anim"
	"github.com/milk9111/cardboard/ecs"
	"github.com/milk9111/cardboard/ecs/component"
)

// MatchSystem judges revealed pairs. Matching cards lock face up; a
// mismatched pair stays visible for a short delay before flipping back down.
type MatchSystem struct {
	timer        *anim.Timer
	flipDuration time.Duration
	delayFrames  int

	pending   []ecs.Entity
	countdown int
	won       bool
}

func NewMatchSystem(timer *anim.Timer, flipDuration time.Duration, delayFrames int) *MatchSystem {
	return &MatchSystem{
		timer:        timer,
		flipDuration: flipDuration,
		delayFrames:  delayFrames,
	}
}

func (s *MatchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	// A judged mismatch waits face up, then flips back down.
	if s.countdown > 0 {
		s.countdown--
		if s.countdown == 0 {
			for _, e := range s.pending {
				card, ok := ecs.Get(w, e, component.CardComponent.Kind())
				if !ok {
					continue
				}
				s.timer.Start(e.Index(), anim.PropertyFlip, card.Flip, 0, s.flipDuration)
			}
			s.pending = nil
		}
		return
	}

	var revealed []ecs.Entity
	total := 0
	matched := 0
	ecs.ForEach(w, component.CardComponent.Kind(), func(e ecs.Entity, card *component.Card) {
		total++
		switch card.State {
		case component.CardRevealed:
			revealed = append(revealed, e)
		case component.CardMatched:
			matched++
		}
	})

	if len(revealed) >= 2 {
		a, okA := ecs.Get(w, revealed[0], component.CardComponent.Kind())
		b, okB := ecs.Get(w, revealed[1], component.CardComponent.Kind())
		if okA && okB {
			s.judge(w, revealed[0], revealed[1], a, b)
			if a.State == component.CardMatched {
				matched += 2
			}
		}
	}

	if !s.won && total > 0 && matched == total {
		s.won = true
		w.Events().Push(ecs.Event{Type: ecs.EventWin})
	}
}

func (s *MatchSystem) judge(w *ecs.World, ea, eb ecs.Entity, a, b *component.Card) {
	evt := ecs.PairEvent{A: ea, B: eb, Symbol: a.Symbol}
	if a.Symbol == b.Symbol {
		a.State = component.CardMatched
		b.State = component.CardMatched
		w.Events().Push(ecs.Event{Type: ecs.EventMatch, Data: evt})
		return
	}

	// Mark them hiding immediately so further clicks and hover transitions
	// leave them alone; the actual flip starts after the delay.
	a.State = component.CardHiding
	b.State = component.CardHiding
	s.pending = []ecs.Entity{ea, eb}
	s.countdown = s.delayFrames
	w.Events().Push(ecs.Event{Type: ecs.EventMismatch, Data: evt})
}
