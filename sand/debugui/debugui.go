// Package debugui draws a Dear ImGui overlay over the sand simulation. Panels
// are plain render functions; ImguiSystem queues them on the frame's
// Commands so they run after the simulation systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/grainfall/sand"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function and records the input
// capture state. Register it ahead of the input system so the pointer can
// consult InputState in the same frame.
type ImguiSystem struct {
	Items      []Item
	InputState InputState
}

func (i *ImguiSystem) Execute(frame *sand.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// MouseCaptured reports whether the overlay owns the mouse.
func (i *ImguiSystem) MouseCaptured() bool {
	return i.InputState.WantCaptureMouse
}

// Panels returns the standard overlay panels for a world driven by scheduler.
func Panels(world *sand.World, scheduler *sand.Scheduler) []Item {
	perf := NewPerformanceStats(120)
	charts := NewGrainCharts(240)
	return []Item{
		{Render: func() { perf.Render(world) }},
		{Render: func() { SystemTable(scheduler) }},
		{Render: func() { charts.Render(world) }},
		{Render: func() { Controls(world) }},
	}
}
