// Package monitor samples host-wide resource usage (CPU and memory of the
// whole machine, not of this process) for the /cgol/stats route and the
// TUI's status line. It is purely observational and has no
// effect on engine semantics.
package monitor

import (
	"runtime"
	"time"

	psutil "github.com/shirou/gopsutil/v3/cpu"
	psmem "github.com/shirou/gopsutil/v3/mem"
)

// Monitor samples CPU and memory usage on demand.
type Monitor struct {
	startedAt time.Time
}

// New returns a Monitor whose uptime is measured from construction.
func New() *Monitor {
	return &Monitor{startedAt: time.Now()}
}

// Snapshot is a point-in-time resource reading.
type Snapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	GoVersion     string  `json:"go_version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Sample reports current CPU percent, memory percent, and uptime. Errors
// from the underlying gopsutil calls are swallowed into zero values: a
// stats route degrading to zeroes is preferable to a 500 on a monitoring
// endpoint.
func (m *Monitor) Sample() Snapshot {
	var cpuPercent float64
	if percents, err := psutil.Percent(0, false); err == nil && len(percents) > 0 {
		cpuPercent = percents[0]
	}

	var memPercent float64
	if vm, err := psmem.VirtualMemory(); err == nil {
		memPercent = vm.UsedPercent
	}

	return Snapshot{
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		GoVersion:     runtime.Version(),
		UptimeSeconds: time.Since(m.startedAt).Seconds(),
	}
}
