// Command replay runs an input script against the arena without a window
// and logs every state change and hit.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/milk9111/ohko/arena"
	"github.com/milk9111/ohko/common"
	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/prefabs"
)

func main() {
	scriptName := flag.String("script", "demo.tengo", "input script in prefabs/scripts (basename, .tengo optional)")
	charFile := flag.String("char", prefabs.HeroFile, "character document in prefabs/")
	ticks := flag.Int("ticks", 4*common.TicksPerSecond, "number of ticks to simulate")
	dummy := flag.Bool("dummy", true, "spawn a training dummy next to the hero")
	verbose := flag.Bool("v", false, "log combos and transitions from inside the controllers")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	char, err := prefabs.LoadCharacter(*charFile, prefabs.HeroStates)
	if err != nil {
		log.Fatal(err)
	}
	script, err := prefabs.LoadInputScript(*scriptName)
	if err != nil {
		log.Fatal(err)
	}

	cfg := arena.DefaultConfig()
	cfg.Script = script
	cfg.Dummy = *dummy
	cfg.Verbose = *verbose

	a, err := arena.New(ctx, cfg, char)
	if err != nil {
		log.Fatal(err)
	}

	dt := time.Second / common.TicksPerSecond
	changes, hits := 0, 0
	for i := 0; i < *ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		for _, evt := range a.Step(dt) {
			switch data := evt.Data.(type) {
			case ecs.StateChange:
				changes++
				log.Printf("tick=%d entity=%v %s -> %s", a.Ticks(), data.Entity, data.From, data.To)
			case ecs.Hit:
				hits++
				log.Printf("tick=%d entity=%v hit entity=%v damage=%.2f", a.Ticks(), data.Attacker, data.Target, data.DamageMultiplier)
			}
		}
	}

	hero := a.HeroController()
	log.Printf("ran %d ticks: %d state changes, %d hits; hero at %.1f,%.1f in %s",
		a.Ticks(), changes, hits, hero.Position().X, hero.Position().Y, hero.State())
}
