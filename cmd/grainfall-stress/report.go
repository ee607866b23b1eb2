package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/grainfall/sand"
)

// Report collects the configuration and results of one stress run.
type Report struct {
	// Configuration
	Duration      time.Duration
	Frames        int64
	Cols          int
	Rows          int
	GravityPasses int
	Dunes         int
	Seed          uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Grains         int
	Painted        int64
	Moved          int64
	Systems        []sand.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats summarizes a series of frame update durations.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Fill returns the fraction of cells holding a grain, as a percentage.
func (r *Report) Fill() float64 {
	cells := r.Cols * r.Rows
	if cells == 0 {
		return 0
	}
	return float64(r.Grains) * 100 / float64(cells)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Grainfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}{{if .Frames}} (or {{.Frames}} frames){{end}}
- **Grid:** {{.Cols}}x{{.Rows}}
- **Gravity Passes:** {{.GravityPasses}}
- **Dune Height:** {{.Dunes}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Simulation
- **Grains:** {{.Grains}} ({{printf "%.1f" .Fill}}% full)
- **Painted:** {{.Painted}}
- **Moved:** {{.Moved}}

## Systems
| System | Avg | Min | Max |
|--------|-----|-----|-----|
{{range .Systems}}| {{.Name}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
