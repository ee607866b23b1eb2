// Command grainfall opens a window where dragging the mouse pours colored
// sand that piles up under gravity.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/grainfall/sand"
)

const title = "grainfall"

func main() {
	cfg := sand.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	dunes := flag.Int("dunes", 0, "Seed the floor with dunes up to this many rows tall.")
	flag.Parse()

	logger := log.New(os.Stderr, "grainfall: ", log.LstdFlags)

	world, err := sand.NewWorld(cfg, logger)
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	if *dunes > 0 {
		n := sand.Dunes(world, int64(cfg.Seed), *dunes)
		logger.Printf("Seeded %d grains of dunes", n)
	}

	game := newGame(world, *debug)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS())
	ebiten.SetWindowClosingHandled(true)

	logger.Printf("Running %dx%d grid at %d TPS", world.Grid.Cols(), world.Grid.Rows(), cfg.TPS())
	if err := ebiten.RunGame(game); err != nil {
		if errors.Is(err, sand.ErrPlatform) {
			logger.Fatalf("Platform failure: %v", err)
		}
		logger.Fatalf("Game stopped: %v", err)
	}
	logger.Printf("Exited after %d frames", world.Frame)
}
