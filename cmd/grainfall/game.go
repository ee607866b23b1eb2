package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/grainfall/sand"
	"github.com/plus3/grainfall/sand/debugui"
	debugui_ebiten "github.com/plus3/grainfall/sand/debugui/ebiten"
	"github.com/plus3/grainfall/sand/screen"
)

// Game implements ebiten.Game around the sand scheduler.
type Game struct {
	world     *sand.World
	scheduler *sand.Scheduler
	screen    *screen.Screen

	// imgui is nil unless the debug overlay is enabled.
	imgui *debugui_ebiten.ImguiBackend
}

func newGame(world *sand.World, debug bool) *Game {
	cfg := world.Config
	g := &Game{
		world:  world,
		screen: screen.New(cfg.Cols(), cfg.Rows(), cfg.Scale),
	}

	pointer := &screen.Pointer{}

	if !debug {
		g.scheduler = sand.NewPipeline(world, pointer, g.screen)
		return g
	}

	g.imgui = debugui_ebiten.NewImguiBackend(title, cfg.Width, cfg.Height)

	// The overlay needs the scheduler for its system table, so it is built
	// first and registered ahead of the pipeline systems.
	overlay := &debugui.ImguiSystem{}
	pointer.Blocked = overlay.MouseCaptured
	g.scheduler = sand.NewPipeline(world, pointer, g.screen, overlay)
	overlay.Items = debugui.Panels(world, g.scheduler)
	return g
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	err := g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.imgui.EndFrame()
	}

	if err != nil {
		return err
	}
	if g.world.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.screen.Draw(dst)

	if g.imgui != nil {
		g.imgui.Draw(dst)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return g.world.Config.Width, g.world.Config.Height
}
