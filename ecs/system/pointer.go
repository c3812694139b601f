package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/cardboard/anim"
	"github.com/milk9111/cardboard/ecs"
	"github.com/milk9111/cardboard/ecs/component"
)

// PointerSystem turns mouse movement and clicks into card animations:
// entering or leaving a card's hitbox starts a hover transition, clicking a
// face-down card starts its flip.
type PointerSystem struct {
	timer         *anim.Timer
	hoverDuration time.Duration
	flipDuration  time.Duration

	// cursor is swapped out in tests to drive the pointer without a window.
	cursor func() (x, y float64, clicked bool)
}

func NewPointerSystem(timer *anim.Timer, hoverDuration, flipDuration time.Duration) *PointerSystem {
	return &PointerSystem{
		timer:         timer,
		hoverDuration: hoverDuration,
		flipDuration:  flipDuration,
		cursor:        readMouse,
	}
}

func readMouse() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (s *PointerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	x, y, clicked := s.cursor()

	ecs.ForEach2(w, component.CardComponent.Kind(), component.HitboxComponent.Kind(), func(e ecs.Entity, card *component.Card, hb *component.Hitbox) {
		inside := hb.Contains(x, y)
		id := e.Index()

		// A card mid-flip keeps its flip transition: the timer holds one
		// entry per entity, so starting a hover here would cancel the flip.
		flipping := card.State == component.CardRevealing || card.State == component.CardHiding

		if inside != card.Hovered {
			card.Hovered = inside
			if !flipping && card.State != component.CardMatched {
				target := 0.0
				if inside {
					target = 1
				}
				s.timer.Start(id, anim.PropertyHover, card.Hover, target, s.hoverDuration)
			}
		}

		if clicked && inside && card.State == component.CardFaceDown {
			card.State = component.CardRevealing
			s.timer.Start(id, anim.PropertyFlip, card.Flip, 1, s.flipDuration)
		}
	})
}
