package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ohko/arena"
	"github.com/milk9111/ohko/common"
	"github.com/milk9111/ohko/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision, hurt and hit regions")
	watch := flag.Bool("watch", false, "reload prefabs/ documents and scripts when they change on disk")
	scriptName := flag.String("script", "", "drive the hero from an input script in prefabs/scripts (basename, .tengo optional)")
	dummy := flag.Bool("dummy", true, "spawn a training dummy next to the hero")
	verbose := flag.Bool("v", false, "log combos and state transitions")
	flag.Parse()

	char, err := prefabs.LoadHero()
	if err != nil {
		log.Fatal(err)
	}

	cfg := arena.DefaultConfig()
	cfg.Dummy = *dummy
	cfg.Verbose = *verbose
	if *scriptName != "" {
		script, err := prefabs.LoadInputScript(*scriptName)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Script = script
	}

	a, err := arena.New(context.Background(), cfg, char)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("ohko")
	ebiten.SetTPS(common.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(a, watcher, *debug, *verbose)); err != nil {
		log.Fatal(err)
	}
}
