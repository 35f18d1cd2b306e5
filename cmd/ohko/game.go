package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ohko/arena"
	"github.com/milk9111/ohko/common"
	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/prefabs"
)

const tick = time.Second / common.TicksPerSecond

type Game struct {
	arena   *arena.Arena
	watcher *prefabs.Watcher
	pointer *pointer
	ui      *ebitenui.UI

	paused  bool
	debug   bool
	verbose bool
}

func NewGame(a *arena.Arena, watcher *prefabs.Watcher, debug, verbose bool) *Game {
	g := &Game{
		arena:   a,
		watcher: watcher,
		pointer: newPointer(padArea()),
		debug:   debug,
		verbose: verbose,
	}
	g.ui = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if in := g.arena.Input(); in != nil {
			in.Face(!g.arena.HeroController().FacingLeft())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	if pad := g.arena.Pad(); pad != nil {
		g.pointer.Update(pad)
	}
	g.arena.PollReload(g.watcher)

	for _, evt := range g.arena.Step(tick) {
		if !g.verbose {
			continue
		}
		switch data := evt.Data.(type) {
		case ecs.StateChange:
			log.Printf("entity %v: %s -> %s", data.Entity, data.From, data.To)
		case ecs.Hit:
			log.Printf("entity %v hit %v (x%.2f)", data.Attacker, data.Target, data.DamageMultiplier)
		}
	}
	return nil
}

// reload re-reads the hero document, keeping the running character on failure.
func (g *Game) reload() {
	g.arena.ApplyChange(prefabs.Change{Path: prefabs.HeroFile})
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawArena(screen, g.arena, g.debug)
	drawPad(screen, g.pointer.area, g.arena.Pad())

	hero := g.arena.HeroController()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d    FPS: %.2f\nState: %s    Grounded: %v\nEsc: pause  F: flip  F3: regions",
		g.arena.Ticks(), ebiten.ActualFPS(), hero.State(), hero.Grounded()))

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
