package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/linkdeck/internal/logger"
	"github.com/MrSnakeDoc/linkdeck/internal/sources/defaults"
)

// DefaultsReloader handles periodic reloading of the locked-block defaults file
type DefaultsReloader struct {
	loader        *defaults.Loader
	mapper        *defaults.Mapper
	set           *defaults.Set
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewDefaultsReloader creates a new defaults reloader
func NewDefaultsReloader(
	defaultsFile string,
	set *defaults.Set,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *DefaultsReloader {
	return &DefaultsReloader{
		loader:        defaults.NewLoader(defaultsFile),
		mapper:        defaults.NewMapper(),
		set:           set,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the defaults immediately, then keeps them fresh on a ticker
// and on the manual trigger channel.
func (dr *DefaultsReloader) Start(ctx context.Context) error {
	if err := dr.Reload(ctx); err != nil {
		return fmt.Errorf("initial defaults load failed: %w", err)
	}

	ticker := time.NewTicker(dr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := dr.Reload(ctx); err != nil {
					dr.logger.Error("failed to reload defaults",
						logger.Error(err))
				}
			case <-dr.manualTrigger:
				dr.logger.Info("manual defaults reload triggered")
				if err := dr.Reload(ctx); err != nil {
					dr.logger.Error("failed to reload defaults",
						logger.Error(err))
				}
			case <-dr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (dr *DefaultsReloader) Stop() {
	close(dr.stopCh)
}

// Reload loads the defaults file and swaps the locked-block set.
func (dr *DefaultsReloader) Reload(_ context.Context) error {
	config, err := dr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	blocks := dr.mapper.MapBlocks(config)
	dr.set.Replace(blocks)

	dr.logger.Info("loaded locked-block defaults",
		logger.Int("blocks", len(blocks)))

	return nil
}
