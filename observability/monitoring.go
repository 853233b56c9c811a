// Package observability reports the resource usage of a run.
package observability

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Usage is a point-in-time view of the process footprint.
type Usage struct {
	RSSBytes   uint64
	AllocBytes uint64
	NumGC      uint32
	Goroutines int
}

// Probe measures the current process.
type Probe struct {
	log   *slog.Logger
	proc  *process.Process
	start time.Time
}

func NewProbe(log *slog.Logger) (*Probe, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Probe{log: log, proc: p, start: time.Now()}, nil
}

func (p *Probe) Usage() (Usage, error) {
	memInfo, err := p.proc.MemoryInfo()
	if err != nil {
		return Usage{}, err
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Usage{
		RSSBytes:   memInfo.RSS,
		AllocBytes: m.Alloc,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}, nil
}

// Log writes the usage at debug level, tagged with the pipeline stage.
func (p *Probe) Log(stage string) {
	u, err := p.Usage()
	if err != nil {
		p.log.Warn("Failed to collect self stats", "stage", stage, "err", err)
		return
	}
	p.log.Debug("Resource usage",
		"stage", stage,
		"elapsed", time.Since(p.start),
		"rss_mb", u.RSSBytes/1024/1024,
		"alloc_mb", u.AllocBytes/1024/1024,
		"num_gc", u.NumGC,
		"goroutines", u.Goroutines,
	)
}
