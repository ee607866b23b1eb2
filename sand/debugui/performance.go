package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/grainfall/sand"
)

// PerformanceStats shows frame timing and per frame grain activity.
type PerformanceStats struct {
	timer      *FrameTimer
	frameTimes *History
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		timer:      NewFrameTimer(),
		frameTimes: NewHistory(historyFrames),
	}
}

func (ps *PerformanceStats) Render(world *sand.World) {
	ps.frameTimes.Push(ps.timer.GetDeltaTime() * 1000.0)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 230), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.frameTimes.Mean()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.Text(fmt.Sprintf("Frame: %d", world.Frame))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Grains: %d / %d", world.Grid.Count(), world.Grid.Cols()*world.Grid.Rows()))
	imgui.Text(fmt.Sprintf("Painted: %d", world.Painted))
	imgui.Text(fmt.Sprintf("Moved: %d", world.Moved))
	imgui.Text(fmt.Sprintf("Pointer: %s", world.Pointer))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	if samples := ps.frameTimes.Ordered(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	}

	imgui.End()
}

// SystemTable lists per system timings collected by the scheduler.
func SystemTable(scheduler *sand.Scheduler) {
	stats := scheduler.GetStats()

	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(380, 200), imgui.CondOnce)

	if !imgui.BeginV("System Performance", nil, 0) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.TotalExecutions))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		systems := stats.Systems
		if sortSpecs := imgui.TableGetSortSpecs(); sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sort.Slice(systems, func(i, j int) bool {
				left, right := systems[i], systems[j]

				var less bool
				switch spec.ColumnIndex() {
				case 0:
					less = left.Name < right.Name
				case 1:
					less = left.AvgDuration < right.AvgDuration
				case 2:
					less = left.MinDuration < right.MinDuration
				case 3:
					less = left.MaxDuration < right.MaxDuration
				}

				if spec.SortDirection() == imgui.SortDirectionDescending {
					return !less
				}
				return less
			})
		}

		for _, sys := range systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.AvgDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MinDuration)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", millis(sys.MaxDuration)))
		}
		imgui.EndTable()
	}

	imgui.End()
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
