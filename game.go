package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cardboard/anim"
	"github.com/milk9111/cardboard/common"
	"github.com/milk9111/cardboard/decks"
	"github.com/milk9111/cardboard/ecs"
	"github.com/milk9111/cardboard/ecs/component"
	"github.com/milk9111/cardboard/ecs/render"
	"github.com/milk9111/cardboard/ecs/system"
	"github.com/milk9111/cardboard/save"
	"github.com/milk9111/cardboard/script"
)

type Game struct {
	deckName string
	debug    bool

	spec    *decks.DeckSpec
	world   *ecs.World
	timer   *anim.Timer
	render  *system.RenderSystem
	score   *system.ScoreSystem
	store   *save.Store
	scorer  *script.Scorer
	watcher *decks.Watcher

	paused  bool
	pauseUI *ebitenui.UI
	winUI   *ebitenui.UI
}

func NewGame(deckName string, debug bool) (*Game, error) {
	spec, err := decks.LoadDeck(deckName)
	if err != nil {
		return nil, err
	}

	scorer, err := script.NewScorer()
	if err != nil {
		log.Printf("cardboard: %v (scores use the built-in rule)", err)
	}

	g := &Game{
		deckName: deckName,
		debug:    debug,
		spec:     spec,
		store:    save.Open("cardboard"),
		scorer:   scorer,
	}
	g.buildBoard()
	g.pauseUI = NewPauseUI(g)

	// Hot reload only works when the decks directory exists on disk; the
	// embedded copies alone have nothing to watch.
	watcher, err := decks.NewWatcher("decks", filepath.Join("decks", "scripts"))
	if err != nil {
		log.Printf("cardboard: hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

// buildBoard resets the world: a fresh timer, a shuffled grid of paired
// cards centered on screen, and the per-frame system order.
func (g *Game) buildBoard() {
	w := ecs.NewWorld()
	g.timer = anim.NewTimer()
	g.winUI = nil

	board := ecs.CreateEntity(w)
	if err := ecs.Add(w, board, component.GameStateComponent.Kind(), &component.GameState{
		DeckName:  g.spec.Name,
		Pairs:     g.spec.Pairs(),
		StartedAt: time.Now(),
		Best:      g.store.Best(g.spec.Name),
	}); err != nil {
		log.Printf("cardboard: add game state: %v", err)
	}

	symbols := boardSymbols(g.spec)
	cw := g.spec.Card.Width
	ch := g.spec.Card.Height
	sp := g.spec.Card.Spacing
	cols := g.spec.Grid.Cols
	rows := g.spec.Grid.Rows

	gridW := float64(cols)*cw + float64(cols-1)*sp
	gridH := float64(rows)*ch + float64(rows-1)*sp
	originX := (common.BaseWidth-gridW)/2 + cw/2
	originY := (common.BaseHeight-gridH)/2 + ch/2

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			x := originX + float64(col)*(cw+sp)
			y := originY + float64(row)*(ch+sp)

			e := ecs.CreateEntity(w)
			addComponent(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
			addComponent(w, e, component.SpriteComponent.Kind(), &component.Sprite{OriginX: cw / 2, OriginY: ch / 2})
			addComponent(w, e, component.CardComponent.Kind(), &component.Card{Index: i, Row: row, Col: col, Symbol: symbols[i]})
			addComponent(w, e, component.HitboxComponent.Kind(), &component.Hitbox{
				BB: cp.BB{L: x - cw/2, B: y - ch/2, R: x + cw/2, T: y + ch/2},
			})
			addComponent(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1})
		}
	}

	w.AddSystem(system.NewPointerSystem(g.timer, g.spec.HoverDuration(), g.spec.FlipDuration()))
	w.AddSystem(system.NewCardAnimSystem(g.timer))
	w.AddSystem(system.NewMatchSystem(g.timer, g.spec.FlipDuration(), g.spec.Timing.MismatchDelayFrames))
	g.score = system.NewScoreSystem(g.scorer, g.store)
	w.AddSystem(g.score)

	g.render = system.NewRenderSystem(
		render.NewCardImages(g.spec),
		render.NamedColor(g.spec.Colors.Background, colornames.Darkslategray),
	)
	g.world = w
}

func addComponent[T any](w *ecs.World, e ecs.Entity, k component.ComponentKind[T], v *T) {
	if err := ecs.Add(w, e, k, v); err != nil {
		log.Printf("cardboard: add component: %v", err)
	}
}

// boardSymbols doubles the first pairs symbols of the deck and shuffles them
// over the grid.
func boardSymbols(spec *decks.DeckSpec) []string {
	pairs := spec.Pairs()
	out := make([]string, 0, pairs*2)
	for _, s := range spec.Symbols[:pairs] {
		out = append(out, s, s)
	}
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if gs := g.gameState(); gs != nil && gs.Won {
		if g.winUI == nil {
			g.winUI = NewWinUI(g, gs)
		}
		g.winUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.buildBoard()
		}
		return nil
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if gs := g.gameState(); gs != nil {
		msg := fmt.Sprintf("%s  moves: %d  matches: %d/%d  best: %d", g.spec.Name, gs.Moves, gs.Matches, gs.Pairs, gs.Best)
		if g.debug {
			msg += fmt.Sprintf("\nfps: %.1f  animating: %v", ebiten.ActualFPS(), g.timer.HasActive())
		}
		ebitenutil.DebugPrint(screen, msg)

		if gs.Won && g.winUI != nil {
			g.winUI.Draw(screen)
		}
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) gameState() *component.GameState {
	e, ok := ecs.First(g.world, component.GameStateComponent.Kind())
	if !ok {
		return nil
	}
	gs, ok := ecs.Get(g.world, e, component.GameStateComponent.Kind())
	if !ok {
		return nil
	}
	return gs
}

// pollWatcher applies pending hot-reload events without blocking the frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("cardboard: watcher error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if strings.HasSuffix(path, ".tengo") {
		src, err := decks.LoadScript(filepath.Base(path))
		if err != nil {
			log.Printf("cardboard: reload script %s: %v", path, err)
			return
		}
		g.scorer = script.NewScorerFromSource(src)
		g.score.SetScorer(g.scorer)
		log.Printf("cardboard: reloaded scoring script %s", path)
		return
	}

	spec, err := decks.LoadDeck(g.deckName)
	if err != nil {
		log.Printf("cardboard: reload deck %s: %v", g.deckName, err)
		return
	}
	g.spec = spec
	g.buildBoard()
	log.Printf("cardboard: reloaded deck %s", g.deckName)
}
