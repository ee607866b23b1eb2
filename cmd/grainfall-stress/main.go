// Command grainfall-stress runs the sand pipeline headless with a scripted
// pointer and prints a timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/grainfall/sand"
)

func main() {
	cfg := sand.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	frames := flag.Int64("frames", 0, "Stop after this many frames. Zero runs for the full duration.")
	dunes := flag.Int("dunes", 0, "Seed the floor with dunes up to this many rows tall.")
	step := flag.Int("step", 12, "Largest pointer movement per frame, in pixels.")
	paced := flag.Bool("paced", false, "Run at the configured frame delay instead of as fast as possible.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting grainfall stress test...")

	world, err := sand.NewWorld(cfg, log.Default())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if *dunes > 0 {
		n := sand.Dunes(world, int64(seed), *dunes)
		log.Printf("Seeded %d grains of dunes", n)
	}

	if err := checkStep(*step); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	input := newWanderer(seed, cfg.Width, cfg.Height, *step)
	surface := sand.NewFramebuffer(cfg.Cols(), cfg.Rows(), nil)
	scheduler := sand.NewPipeline(world, input, surface)

	report := &Report{
		Duration:       *duration,
		Frames:         *frames,
		Cols:           cfg.Cols(),
		Rows:           cfg.Rows(),
		GravityPasses:  cfg.GravityPasses,
		Dunes:          *dunes,
		Seed:           seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	runner := run
	if *paced {
		runner = runPaced
	}
	if err := runner(ctx, scheduler, *frames, report); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	runtime.ReadMemStats(&report.MemStatsEnd)
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run steps the scheduler as fast as possible until ctx expires or the frame
// limit is reached, recording results into report.
func run(ctx context.Context, scheduler *sand.Scheduler, frames int64, report *Report) error {
	world := scheduler.World()
	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for frames <= 0 || report.TotalUpdates < frames {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		updateStart := time.Now()
		err := scheduler.Once(deltaTime.Seconds())
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
		if err != nil {
			return err
		}

		report.Painted += int64(world.Painted)
		report.Moved += int64(world.Moved)
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Grains = world.Grid.Count()
	report.Systems = scheduler.GetStats().Systems
	return nil
}

// runPaced drives the scheduler's own ticker loop at the configured frame
// delay. A frameRecorder registered after the pipeline collects the per
// frame results that run gathers around Once.
func runPaced(ctx context.Context, scheduler *sand.Scheduler, frames int64, report *Report) error {
	world := scheduler.World()
	startTime := time.Now()

	scheduler.Register(newFrameRecorder(scheduler, report))
	if frames > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		scheduler.Register(&frameLimit{limit: frames, cancel: cancel})
	}

	err := scheduler.Run(ctx, world.Config.FrameDelay)

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = world.Frame
	report.UpdateTime.Finalize()
	report.Grains = world.Grid.Count()
	report.Systems = scheduler.GetStats().Systems
	return err
}

// frameRecorder adds each frame's grain counters to the report and samples
// the time spent in the systems registered before it.
type frameRecorder struct {
	scheduler *sand.Scheduler
	report    *Report
	measured  int
}

func newFrameRecorder(scheduler *sand.Scheduler, report *Report) *frameRecorder {
	return &frameRecorder{
		scheduler: scheduler,
		report:    report,
		measured:  scheduler.GetStats().SystemCount,
	}
}

func (r *frameRecorder) Execute(frame *sand.Frame) {
	r.report.Painted += int64(frame.World.Painted)
	r.report.Moved += int64(frame.World.Moved)

	var update time.Duration
	for _, sys := range r.scheduler.GetStats().Systems[:r.measured] {
		update += sys.LastDuration
	}
	r.report.UpdateTime.Samples = append(r.report.UpdateTime.Samples, update)
}

// frameLimit cancels the run once the world has completed limit frames.
type frameLimit struct {
	limit  int64
	cancel context.CancelFunc
}

func (f *frameLimit) Execute(frame *sand.Frame) {
	if frame.World.Frame+1 >= f.limit {
		f.cancel()
	}
}
