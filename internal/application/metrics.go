package application

import (
	"runtime"
	"sync/atomic"
	"time"

	repo "github.com/adipranaya/demo-dashboard-api/internal/domain/repository"
)

// Metrics tracks process-lifetime request volume. The counter is incremented
// exactly once per handled request by the counting middleware, before the
// handler runs, so requests that fail still count.
type Metrics struct {
	start     time.Time
	requests  atomic.Int64
	directory repo.UserDirectory
}

// MemoryUsage reports runtime memory gauges at snapshot time.
type MemoryUsage struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGC"`
}

// Snapshot is a point-in-time read of the aggregate counters. Uptime is in
// seconds, rounded to milliseconds.
type Snapshot struct {
	TotalRequests int64       `json:"totalRequests"`
	TotalUsers    int         `json:"totalUsers"`
	Uptime        float64     `json:"uptime"`
	MemoryUsage   MemoryUsage `json:"memoryUsage"`
	Timestamp     time.Time   `json:"timestamp"`
}

func NewMetrics(directory repo.UserDirectory) *Metrics {
	return &Metrics{start: time.Now(), directory: directory}
}

// Increment adds one handled request. Monotonic; never reset.
func (m *Metrics) Increment() {
	m.requests.Add(1)
}

// Total returns the current request count.
func (m *Metrics) Total() int64 {
	return m.requests.Load()
}

// Snapshot combines the request counter, the live directory size, process
// uptime and memory gauges.
func (m *Metrics) Snapshot() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return Snapshot{
		TotalRequests: m.requests.Load(),
		TotalUsers:    m.directory.Count(),
		Uptime:        time.Since(m.start).Round(time.Millisecond).Seconds(),
		MemoryUsage: MemoryUsage{
			Alloc:      ms.Alloc,
			TotalAlloc: ms.TotalAlloc,
			Sys:        ms.Sys,
			NumGC:      ms.NumGC,
		},
		Timestamp: time.Now().UTC(),
	}
}
