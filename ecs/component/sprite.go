package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
