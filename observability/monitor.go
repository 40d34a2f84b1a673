package observability

import (
	"runtime"
	"songster/domain/event"
	"sync"
	"time"
)

type ProcessStats struct {
	PID        int32   `json:"pid"`
	Status     string  `json:"status"`
	CPUPercent float64 `json:"cpu_percent"`
	RAMPercent float32 `json:"ram_percent"`
	RSSMb      uint64  `json:"rss_mb"`
}

type ChannelStats struct {
	Length   int `json:"length"`
	Capacity int `json:"capacity"`
}

// Stats aggregates every metric exposed by the debug server.
type Stats struct {
	StartedAt      time.Time               `json:"started_at"`
	Uptime         string                  `json:"uptime"`
	LiveGames      int                     `json:"live_games"`
	Counters       map[string]uint64       `json:"counters"`
	Process        *ProcessStats           `json:"process,omitempty"`
	Channels       map[string]ChannelStats `json:"channels"`
	AllocMemMb     uint64                  `json:"alloc_mem_mb"`
	NumGC          uint32                  `json:"num_gc"`
	NumGoroutine   int                     `json:"num_goroutine"`
	LastSampleTime *time.Time              `json:"last_sample_time,omitempty"`
}

// Monitor keeps the latest technical samples received by the telemetry worker.
type Monitor struct {
	mu         sync.RWMutex
	startedAt  time.Time
	counter    *event.Counter
	liveGames  func() int
	process    *ProcessStats
	channels   map[string]ChannelStats
	lastSample *time.Time
}

func NewMonitor(counter *event.Counter, liveGames func() int) *Monitor {
	return &Monitor{
		startedAt: time.Now().UTC(),
		counter:   counter,
		liveGames: liveGames,
		channels:  make(map[string]ChannelStats),
	}
}

// Handle records process and channel samples. Other events are ignored.
func (m *Monitor) Handle(e event.Event) {
	switch payload := e.Payload.(type) {
	case event.ProcessTracker:
		m.mu.Lock()
		m.process = &ProcessStats{
			PID:        int32(payload.PID),
			Status:     string(payload.Status),
			CPUPercent: payload.Cpu,
			RAMPercent: payload.Ram,
			RSSMb:      payload.RSS / 1024 / 1024,
		}
		at := e.CreatedAt
		m.lastSample = &at
		m.mu.Unlock()
	case event.ChannelCapacity:
		m.mu.Lock()
		m.channels[payload.ChannelName] = ChannelStats{Length: payload.Length, Capacity: payload.Capacity}
		m.mu.Unlock()
	}
}

func (m *Monitor) Snapshot() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	counters := make(map[string]uint64)
	for k, v := range m.counter.Snapshot() {
		counters[string(k)] = v
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	channels := make(map[string]ChannelStats, len(m.channels))
	for k, v := range m.channels {
		channels[k] = v
	}
	stats := Stats{
		StartedAt:      m.startedAt,
		Uptime:         time.Since(m.startedAt).Round(time.Second).String(),
		Counters:       counters,
		Channels:       channels,
		AllocMemMb:     mem.Alloc / 1024 / 1024,
		NumGC:          mem.NumGC,
		NumGoroutine:   runtime.NumGoroutine(),
		LastSampleTime: m.lastSample,
	}
	if m.liveGames != nil {
		stats.LiveGames = m.liveGames()
	}
	if m.process != nil {
		p := *m.process
		stats.Process = &p
	}
	return stats
}
