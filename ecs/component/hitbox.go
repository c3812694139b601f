package component

import "github.com/jakecoffman/cp"

// Hitbox is the screen-space pointer target of an entity.
type Hitbox struct {
	BB cp.BB
}

// Contains reports whether the point is inside the hitbox.
func (h *Hitbox) Contains(x, y float64) bool {
	if h == nil {
		return false
	}
	return h.BB.ContainsVect(cp.Vector{X: x, Y: y})
}

var HitboxComponent = NewComponent[Hitbox]()
