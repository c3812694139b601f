package system

import (
	"github.com/milk9111/cardboard/anim"
	"github.com/milk9111/cardboard/ecs"
	"github.com/milk9111/cardboard/ecs/component"
)

// CardAnimSystem is the per-frame half of the animation timer: it queries the
// timer once per card and writes the eased value back into the card's
// animated scalar. A flip that has just delivered its final value advances
// the card's reveal state.
type CardAnimSystem struct {
	timer *anim.Timer
}

func NewCardAnimSystem(timer *anim.Timer) *CardAnimSystem {
	return &CardAnimSystem{timer: timer}
}

func (s *CardAnimSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.CardComponent.Kind(), func(e ecs.Entity, card *component.Card) {
		id := e.Index()
		prop, value, ok := s.timer.Update(id)
		if !ok {
			return
		}

		switch prop {
		case anim.PropertyHover:
			card.Hover = value
		case anim.PropertyFlip:
			card.Flip = value
			// The completing query removes the entry, so absence here means
			// the flip just finished.
			if !s.timer.IsAnimating(id) {
				switch card.State {
				case component.CardRevealing:
					card.State = component.CardRevealed
				case component.CardHiding:
					card.State = component.CardFaceDown
				}
			}
		}
	})
}
