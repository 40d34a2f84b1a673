package workers

import (
	"context"
	"log/slog"
	"os"
	"songster/domain"
	"songster/domain/event"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ChannelProbe reports the usage of one internal channel.
type ChannelProbe struct {
	Name     string
	Length   func() int
	Capacity int
}

// TelemetryWorker dispatches technical events to the handler chain.
// Every metricInterval it also samples the server process and the probed channels.
type TelemetryWorker struct {
	log            *slog.Logger
	metricInterval time.Duration
	telemetryChan  <-chan event.Event
	handlers       []event.Handler
	probes         []ChannelProbe
}

func NewTelemetryWorker(log *slog.Logger,
	metricInterval time.Duration,
	telemetryChan <-chan event.Event,
	handlers []event.Handler,
	probes ...ChannelProbe) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		metricInterval: metricInterval,
		telemetryChan:  telemetryChan,
		handlers:       handlers,
		probes:         probes,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		w.log.Warn("Process metrics unavailable", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt := <-w.telemetryChan:
			w.handle(evt)
		case <-ticker.C:
			if p != nil {
				if evt, err := selfStats(p); err != nil {
					w.log.Error("Failed to collect self stats", "error", err)
				} else {
					w.handle(evt)
				}
			}
			for _, probe := range w.probes {
				w.handle(event.Event{
					Type:      event.ChannelCapacityType,
					CreatedAt: time.Now().UTC(),
					Payload: event.ChannelCapacity{
						ChannelName: probe.Name,
						Capacity:    probe.Capacity,
						Length:      probe.Length(),
					},
				})
			}
		}
	}
}

func (w *TelemetryWorker) handle(evt event.Event) {
	for _, h := range w.handlers {
		h.Handle(evt)
	}
}

// selfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func selfStats(p *process.Process) (event.Event, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return event.Event{}, err
	}
	memPercent, err := p.MemoryPercent()
	if err != nil {
		return event.Event{}, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return event.Event{}, err
	}
	status, err := p.Status()
	if err != nil {
		return event.Event{}, err
	}
	return event.Event{
		Type:      event.PIDTrackerType,
		CreatedAt: time.Now().UTC(),
		Payload: event.ProcessTracker{
			PID:    domain.PID(p.Pid),
			Status: domain.ToStatus(status),
			Cpu:    cpuPercent,
			Ram:    memPercent,
			RSS:    memInfo.RSS,
		},
	}, nil
}
