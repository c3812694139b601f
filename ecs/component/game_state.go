package component

import "time"

// GameState is the singleton board component: progress counters and the final
// result once the last pair is matched.
type GameState struct {
	DeckName  string
	Pairs     int
	Moves     int
	Matches   int
	StartedAt time.Time

	Won   bool
	Score int
	Best  int
}

var GameStateComponent = NewComponent[GameState]()
