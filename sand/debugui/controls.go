package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/grainfall/sand"
)

// Controls renders buttons mirroring the keyboard shortcuts. It runs from the
// frame's deferred commands, after every system, so it mutates the world
// directly.
func Controls(world *sand.World) {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 170), imgui.CondOnce)

	if !imgui.BeginV("Controls", nil, 0) {
		imgui.End()
		return
	}

	label := "Pause"
	if world.Paused {
		label = "Resume"
	}
	if imgui.Button(label) {
		world.Paused = !world.Paused
	}
	imgui.SameLine()
	if imgui.Button("Clear") {
		world.Grid.Reset()
	}

	imgui.Separator()
	band := world.Sampler.Band()
	imgui.TextColored(bandColor(band), fmt.Sprintf("Band: %s", band.Name))
	imgui.SameLine()
	if imgui.Button("Next") {
		world.Sampler.Cycle()
	}

	imgui.Text(fmt.Sprintf("Brush radius: %d", world.Brush.Radius))
	if imgui.Button("-") {
		world.Brush.Grow(-1)
	}
	imgui.SameLine()
	if imgui.Button("+") {
		world.Brush.Grow(1)
	}

	imgui.End()
}

func bandColor(band sand.ColorBand) imgui.Vec4 {
	return imgui.NewVec4(
		float32(band.Base.R)/255.0,
		float32(band.Base.G)/255.0,
		float32(band.Base.B)/255.0,
		1.0,
	)
}
