package component

// CardState tracks where a card is in its reveal lifecycle.
type CardState uint8

const (
	CardFaceDown CardState = iota
	CardRevealing
	CardRevealed
	CardHiding
	CardMatched
)

func (s CardState) String() string {
	switch s {
	case CardFaceDown:
		return "face_down"
	case CardRevealing:
		return "revealing"
	case CardRevealed:
		return "revealed"
	case CardHiding:
		return "hiding"
	case CardMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is one card in the grid. Hover and Flip are the animated scalars the
// timer drives each frame: hover brightens the card, flip runs 0 (face down)
// to 1 (face up) through an edge-on state at 0.5.
type Card struct {
	Index  int
	Row    int
	Col    int
	Symbol string
	State  CardState

	Hover   float64
	Flip    float64
	Hovered bool
}

// FaceUp reports whether the card currently shows its face side.
func (c *Card) FaceUp() bool {
	if c == nil {
		return false
	}
	return c.Flip >= 0.5
}

var CardComponent = NewComponent[Card]()
