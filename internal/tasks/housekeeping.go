// Package tasks runs the periodic housekeeping jobs: overdue rental
// sweeps, order-log pruning and dashboard statistics refresh.
package tasks

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"robot-rental-admin/internal/config"
	"robot-rental-admin/internal/logger"
)

type OverdueMarker interface {
	MarkOverdue(ctx context.Context) (int, error)
}

type LogPruner interface {
	PruneLogs(ctx context.Context, retention time.Duration) (int64, error)
}

type StatsRefresher interface {
	Refresh(ctx context.Context) error
}

// StatsFunc adapts a plain function to the StatsRefresher interface.
type StatsFunc func(ctx context.Context) error

func (f StatsFunc) Refresh(ctx context.Context) error {
	return f(ctx)
}

// Runner owns the housekeeping goroutines. Stop waits for the current
// iteration of every job to finish.
type Runner struct {
	cfg     config.HousekeepingConfig
	rentals OverdueMarker
	orders  LogPruner
	stats   StatsRefresher
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewRunner(cfg config.HousekeepingConfig, rentals OverdueMarker, orders LogPruner, stats StatsRefresher) *Runner {
	return &Runner{
		cfg:     cfg,
		rentals: rentals,
		orders:  orders,
		stats:   stats,
	}
}

func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.spawn(ctx, "overdue rental sweep", r.cfg.OverdueCheckInterval, func(ctx context.Context) {
		marked, err := r.rentals.MarkOverdue(ctx)
		if err != nil {
			logger.Error("overdue rental sweep failed", zap.Error(err))
			return
		}
		if marked > 0 {
			logger.Info("overdue rental sweep finished", zap.Int("marked", marked))
		}
	})

	r.spawn(ctx, "order log pruning", r.cfg.LogPruneInterval, func(ctx context.Context) {
		if _, err := r.orders.PruneLogs(ctx, r.cfg.LogRetention); err != nil {
			logger.Error("order log pruning failed", zap.Error(err))
		}
	})

	r.spawn(ctx, "stats refresh", r.cfg.StatsRefreshInterval, func(ctx context.Context) {
		if err := r.stats.Refresh(ctx); err != nil {
			logger.Error("stats refresh failed", zap.Error(err))
		}
	})
}

func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Runner) spawn(ctx context.Context, name string, interval time.Duration, job func(context.Context)) {
	if interval <= 0 {
		logger.Warn("housekeeping job disabled", zap.String("job", name))
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("housekeeping job started",
			zap.String("job", name), zap.Duration("interval", interval))

		for {
			select {
			case <-ctx.Done():
				logger.Info("housekeeping job stopped", zap.String("job", name))
				return
			case <-ticker.C:
				job(ctx)
			}
		}
	}()
}
