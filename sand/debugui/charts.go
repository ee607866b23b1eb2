package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/grainfall/sand"
)

// GrainCharts plots grain counts over time.
type GrainCharts struct {
	grains  *History
	moved   *History
	painted *History
}

func NewGrainCharts(historyFrames int) *GrainCharts {
	return &GrainCharts{
		grains:  NewHistory(historyFrames),
		moved:   NewHistory(historyFrames),
		painted: NewHistory(historyFrames),
	}
}

// Sample records the world's counters for the current frame.
func (gc *GrainCharts) Sample(world *sand.World) {
	gc.grains.Push(float32(world.Grid.Count()))
	gc.moved.Push(float32(world.Moved))
	gc.painted.Push(float32(world.Painted))
}

func (gc *GrainCharts) Render(world *sand.World) {
	gc.Sample(world)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 250), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(500, 300), imgui.CondOnce)

	if !imgui.BeginV("Grain Charts", nil, 0) {
		imgui.End()
		return
	}

	if imgui.BeginTabBar("GrainTabs") {
		if imgui.BeginTabItem("Population") {
			plot("Grains", "Frame", "Grains", gc.grains)
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Activity") {
			if implot.BeginPlotV("Activity", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Cells", 0, implot.AxisFlagsAutoFit)
				plotLine("Moved", gc.moved)
				plotLine("Painted", gc.painted)
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	imgui.End()
}

func plot(title, xLabel, yLabel string, h *History) {
	if implot.BeginPlotV(title, imgui.NewVec2(-1, -1), 0) {
		implot.SetupAxesV(xLabel, yLabel, 0, implot.AxisFlagsAutoFit)
		plotLine(yLabel, h)
		implot.EndPlot()
	}
}

func plotLine(name string, h *History) {
	samples := h.Ordered()
	if len(samples) == 0 {
		return
	}
	implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
}
