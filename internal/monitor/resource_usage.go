package monitor

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceUsage captures process and host resource statistics sampled at
// the end of a monitoring cycle
type ResourceUsage struct {
	AllocMB              int64   // Currently allocated heap memory
	SysMB                int64   // Memory obtained from the OS by the runtime
	Goroutines           int     // Number of goroutines
	GCCount              int64   // Completed GC cycles
	SystemMemUsedPercent float64 // Host memory used percentage
	CPUUsagePercent      float64 // Host CPU usage percentage
}

// SampleResourceUsage returns current resource usage statistics
func SampleResourceUsage() ResourceUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	usage := ResourceUsage{
		AllocMB:    int64(m.Alloc / 1024 / 1024),
		SysMB:      int64(m.Sys / 1024 / 1024),
		Goroutines: runtime.NumGoroutine(),
		GCCount:    int64(m.NumGC),
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		usage.SystemMemUsedPercent = vmStat.UsedPercent
	}

	if cpuPercents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(cpuPercents) > 0 {
		usage.CPUUsagePercent = cpuPercents[0]
	}

	return usage
}
