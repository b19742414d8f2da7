package refresher

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type refreshable interface {
	Refresh(ctx context.Context) error
}

// Refresher periodically re-fetches every registered store's snapshot. It is
// the fallback for notifications lost while the realtime channel is down;
// refreshes are idempotent full replacements, so an extra tick never hurts.
type Refresher struct {
	stores   map[string]refreshable
	interval time.Duration
	logger   logger.Logger
}

func New(interval time.Duration, logger logger.Logger) *Refresher {
	return &Refresher{
		stores:   make(map[string]refreshable),
		interval: interval,
		logger:   logger,
	}
}

// Register adds a store under a diagnostic name. Call before Start.
func (r *Refresher) Register(name string, store refreshable) {
	r.stores[name] = store
}

func (r *Refresher) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("snapshot refresher started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("snapshot refresher stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Refresher) tick(ctx context.Context) {
	for name, store := range r.stores {
		if err := store.Refresh(ctx); err != nil {
			r.logger.Error("periodic refresh failed",
				logger.String("store", name),
				logger.String("error", err.Error()),
			)
		}
	}
}
