package profiler

import (
	"log"
	"math"
	"runtime"
	"time"
)

// DefaultInterval is how often statistics are computed and logged.
const DefaultInterval = time.Second

// Stats is a snapshot of frame statistics over one reporting interval.
type Stats struct {
	Frames       int
	FPS          float64
	AvgFrameTime time.Duration
	MinFrameTime time.Duration
	MaxFrameTime time.Duration
	HeapMB       float64
	AllocRateMB  float64 // MB allocated per second over the interval
	NumGC        uint32
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Time is driven by the frame delta passed to Tick, so the numbers describe
// exactly the frames the render loop produced.
type Profiler struct {
	interval time.Duration
	quiet    bool

	frameCount int
	elapsed    float64 // seconds accumulated since the last report
	minFrame   float64
	maxFrame   float64

	memStats       runtime.MemStats
	lastTotalAlloc uint64
	last           Stats
}

// NewProfiler creates a new Profiler reporting every interval.
// Non-positive intervals default to DefaultInterval.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	p := &Profiler{interval: interval}
	p.reset()
	return p
}

// SetQuiet suppresses log output while still computing Stats.
//
// Parameters:
//   - quiet: true to stop logging
func (p *Profiler) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Tick should be called once per frame with that frame's delta time.
// Computes and logs statistics when the accumulated time reaches the interval.
// Non-positive deltas still count the frame but add no time.
//
// Parameters:
//   - dt: the frame's delta time in seconds
//
// Returns:
//   - bool: true if stats were computed this tick, false otherwise
func (p *Profiler) Tick(dt float32) bool {
	d := max(float64(dt), 0)
	p.frameCount++
	p.elapsed += d
	p.minFrame = math.Min(p.minFrame, d)
	p.maxFrame = math.Max(p.maxFrame, d)

	if p.elapsed < p.interval.Seconds() {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	p.last = Stats{
		Frames:       p.frameCount,
		FPS:          float64(p.frameCount) / p.elapsed,
		AvgFrameTime: seconds(p.elapsed / float64(p.frameCount)),
		MinFrameTime: seconds(p.minFrame),
		MaxFrameTime: seconds(p.maxFrame),
		HeapMB:       float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:  float64(allocDelta) / 1024 / 1024 / p.elapsed,
		NumGC:        p.memStats.NumGC,
	}
	p.lastTotalAlloc = p.memStats.TotalAlloc

	if !p.quiet {
		log.Printf("[Profiler] FPS: %.2f | Frame: %s avg, %s min, %s max | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
			p.last.FPS, p.last.AvgFrameTime, p.last.MinFrameTime, p.last.MaxFrameTime, p.last.HeapMB, p.last.AllocRateMB, p.last.NumGC)
	}

	p.reset()
	return true
}

// Stats returns the statistics computed at the last report, or zero values
// before the first report.
//
// Returns:
//   - Stats: the last snapshot
func (p *Profiler) Stats() Stats {
	return p.last
}

func (p *Profiler) reset() {
	p.frameCount = 0
	p.elapsed = 0
	p.minFrame = math.Inf(1)
	p.maxFrame = 0
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
