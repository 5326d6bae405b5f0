package scheduler

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/linkdeck/internal/editor"
	"github.com/MrSnakeDoc/linkdeck/internal/logger"
)

const (
	// DefaultSessionTTL is how long an edit session may sit idle before
	// it is reclaimed.
	DefaultSessionTTL = 30 * time.Minute
)

// SessionGC reclaims abandoned edit sessions from the registry.
type SessionGC struct {
	registry *editor.Registry
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewSessionGC creates a new session garbage collector
func NewSessionGC(
	registry *editor.Registry,
	log logger.Logger,
	interval time.Duration,
) *SessionGC {
	return &SessionGC{
		registry: registry,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep
func (gc *SessionGC) Start(ctx context.Context) error {
	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gc.Collect()
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the collector
func (gc *SessionGC) Stop() {
	close(gc.stopCh)
}

// Collect sweeps idle sessions once.
func (gc *SessionGC) Collect() {
	removed := gc.registry.SweepIdle(time.Now())
	if removed > 0 {
		gc.logger.Info("reclaimed idle edit sessions",
			logger.Int("removed", removed),
			logger.Int("remaining", gc.registry.Count()))
	} else {
		gc.logger.Debug("no idle edit sessions to reclaim")
	}
}
