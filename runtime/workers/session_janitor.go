package workers

import (
	"context"
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"time"
)

const (
	defaultJanitorInterval = time.Minute
	defaultIdleTimeout     = 30 * time.Minute
)

// SessionJanitor destroys sessions nobody touched for idleTimeout and tells
// their members about it.
type SessionJanitor struct {
	log         *slog.Logger
	reaper      contract.ISessionReaper
	publisher   contract.IPublisher
	interval    time.Duration
	idleTimeout time.Duration
	now         func() time.Time
}

func NewSessionJanitor(log *slog.Logger, reaper contract.ISessionReaper, publisher contract.IPublisher,
	interval, idleTimeout time.Duration) *SessionJanitor {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleTimeout
	}
	return &SessionJanitor{
		log:         log,
		reaper:      reaper,
		publisher:   publisher,
		interval:    interval,
		idleTimeout: idleTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (w *SessionJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep expires idle sessions once and returns how many were destroyed.
func (w *SessionJanitor) Sweep() int {
	now := w.now()
	expired := w.reaper.ExpireIdle(now, w.idleTimeout)
	for _, s := range expired {
		w.publisher.Publish(event.SessionExpired{
			Code:      s.Code,
			Phase:     s.Phase,
			Members:   s.Members,
			Standings: domain.Standings(s.Members),
			At:        now,
		})
	}
	if len(expired) > 0 {
		w.log.Info("Idle games expired", "count", len(expired), "idle_timeout", w.idleTimeout)
	}
	return len(expired)
}
