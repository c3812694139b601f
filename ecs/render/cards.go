package render

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cardboard/decks"
)

const borderPx = 3

// CardImages builds and caches the face and back images for a deck. Cards are
// drawn procedurally (border, fill, symbol glyph) so the demo ships no image
// assets.
type CardImages struct {
	width  int
	height int

	backColor   color.RGBA
	faceColor   color.RGBA
	borderColor color.RGBA

	back  *ebiten.Image
	faces map[string]*ebiten.Image
}

func NewCardImages(spec *decks.DeckSpec) *CardImages {
	return &CardImages{
		width:       int(spec.Card.Width),
		height:      int(spec.Card.Height),
		backColor:   NamedColor(spec.Colors.Back, colornames.Steelblue),
		faceColor:   NamedColor(spec.Colors.Face, colornames.Whitesmoke),
		borderColor: NamedColor(spec.Colors.Border, colornames.Navy),
		faces:       make(map[string]*ebiten.Image),
	}
}

// Back returns the shared face-down image.
func (c *CardImages) Back() *ebiten.Image {
	if c.back == nil {
		c.back = c.blank(c.backColor)
	}
	return c.back
}

// Face returns the face image for a symbol, building it on first use.
func (c *CardImages) Face(symbol string) *ebiten.Image {
	if img, ok := c.faces[symbol]; ok {
		return img
	}
	img := c.blank(c.faceColor)
	c.drawSymbol(img, symbol)
	c.faces[symbol] = img
	return img
}

// blank builds a bordered card rectangle.
func (c *CardImages) blank(fill color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(c.width, c.height)
	img.Fill(c.borderColor)

	inner := ebiten.NewImage(c.width-2*borderPx, c.height-2*borderPx)
	inner.Fill(fill)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(borderPx, borderPx)
	img.DrawImage(inner, op)
	return img
}

func (c *CardImages) drawSymbol(img *ebiten.Image, symbol string) {
	face := ebtext.NewGoXFace(basicfont.Face7x13)

	// Scale the tiny bitmap face up to roughly half the card height.
	scale := float64(c.height) / 2 / float64(basicfont.Face7x13.Height)

	w, h := ebtext.Measure(symbol, face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(c.width)-w*scale)/2,
		(float64(c.height)-h*scale)/2,
	)
	op.ColorScale.ScaleWithColor(c.borderColor)
	ebtext.Draw(img, symbol, face, op)
}

// NamedColor resolves an SVG 1.1 color name, falling back when unknown.
func NamedColor(name string, fallback color.RGBA) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return fallback
}
