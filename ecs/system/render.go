package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cardboard/ecs"
	"github.com/milk9111/cardboard/ecs/component"
	"github.com/milk9111/cardboard/ecs/render"
)

// RenderSystem draws the board. Cards pick their face or back image from the
// cache; the flip scalar squeezes the card horizontally through an edge-on
// state at 0.5, and the hover scalar brightens it.
type RenderSystem struct {
	images     *render.CardImages
	background color.Color
}

func NewRenderSystem(images *render.CardImages, background color.Color) *RenderSystem {
	return &RenderSystem{
		images:     images,
		background: background,
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if r.background != nil {
		screen.Fill(r.background)
	}

	entities := ecs.Query(w, component.TransformComponent.ID(), component.SpriteComponent.ID())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := 0, 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return entities[i] < entities[j]
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			continue
		}

		img := s.Image
		flipScale := 1.0
		brightness := 1.0

		if card, ok := ecs.Get(w, e, component.CardComponent.Kind()); ok {
			if r.images != nil {
				if card.FaceUp() {
					img = r.images.Face(card.Symbol)
				} else {
					img = r.images.Back()
				}
			}
			flipScale = math.Abs(1 - 2*card.Flip)
			brightness = 0.8 + 0.2*card.Hover
			if card.State == component.CardMatched {
				brightness = 1
			}
		}

		if img == nil {
			continue
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx*flipScale, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.Scale(float32(brightness), float32(brightness), float32(brightness), 1)
		screen.DrawImage(img, op)
	}
}
