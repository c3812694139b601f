package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cardboard/decks"
)

// deckgen emits a deck yaml for the given grid. Symbols default to A..Z taken
// in order; pass -symbols to use your own set, and -seed to shuffle which
// symbols end up on the board.
func main() {
	name := flag.String("name", "generated", "deck name")
	rows := flag.Int("rows", 4, "grid rows")
	cols := flag.Int("cols", 4, "grid columns")
	symbols := flag.String("symbols", "", "comma-separated symbol list (default A..Z)")
	seed := flag.Int64("seed", 0, "shuffle symbols with this seed (0 keeps the given order)")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	spec := decks.DeckSpec{
		Name: *name,
		Grid: decks.GridSpec{Rows: *rows, Cols: *cols},
		Card: decks.CardSpec{Width: 110, Height: 150, Spacing: 18},
		Timing: decks.TimingSpec{
			HoverMs:             200,
			FlipMs:              300,
			MismatchDelayFrames: 45,
		},
		Colors: decks.ColorsSpec{
			Background: "darkslategray",
			Back:       "steelblue",
			Face:       "whitesmoke",
			Border:     "navy",
		},
		Symbols: symbolList(*symbols, *rows**cols/2),
	}

	if *seed != 0 {
		rng := rand.New(rand.NewSource(*seed))
		rng.Shuffle(len(spec.Symbols), func(i, j int) {
			spec.Symbols[i], spec.Symbols[j] = spec.Symbols[j], spec.Symbols[i]
		})
	}

	if err := spec.Validate(); err != nil {
		log.Fatalf("deckgen: %v", err)
	}

	data, err := yaml.Marshal(&spec)
	if err != nil {
		log.Fatalf("deckgen: marshal: %v", err)
	}

	if *out == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("deckgen: write %s: %v", *out, err)
	}
	log.Printf("deckgen: wrote %s", *out)
}

func symbolList(csv string, pairs int) []string {
	if csv != "" {
		parts := strings.Split(csv, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}

	if pairs > 26 {
		pairs = 26
	}
	out := make([]string, 0, pairs)
	for i := 0; i < pairs; i++ {
		out = append(out, string(rune('A'+i)))
	}
	return out
}
