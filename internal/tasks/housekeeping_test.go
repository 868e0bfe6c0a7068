package tasks

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"robot-rental-admin/internal/config"
)

type countingMarker struct {
	calls atomic.Int64
}

func (c *countingMarker) MarkOverdue(_ context.Context) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

type countingPruner struct {
	calls atomic.Int64
}

func (c *countingPruner) PruneLogs(_ context.Context, _ time.Duration) (int64, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestRunnerRunsAndStops(t *testing.T) {
	marker := &countingMarker{}
	pruner := &countingPruner{}
	var refreshes atomic.Int64

	runner := NewRunner(config.HousekeepingConfig{
		OverdueCheckInterval: 10 * time.Millisecond,
		LogPruneInterval:     10 * time.Millisecond,
		LogRetention:         time.Hour,
		StatsRefreshInterval: 10 * time.Millisecond,
	}, marker, pruner, StatsFunc(func(_ context.Context) error {
		refreshes.Add(1)
		return nil
	}))

	runner.Start()
	time.Sleep(60 * time.Millisecond)
	runner.Stop()

	assert.Greater(t, marker.calls.Load(), int64(0))
	assert.Greater(t, pruner.calls.Load(), int64(0))
	assert.Greater(t, refreshes.Load(), int64(0))

	// No further ticks after Stop.
	settled := marker.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, marker.calls.Load())
}

func TestRunnerSkipsDisabledJobs(t *testing.T) {
	marker := &countingMarker{}
	pruner := &countingPruner{}

	runner := NewRunner(config.HousekeepingConfig{}, marker, pruner,
		StatsFunc(func(_ context.Context) error { return nil }))

	runner.Start()
	time.Sleep(20 * time.Millisecond)
	runner.Stop()

	assert.Zero(t, marker.calls.Load())
	assert.Zero(t, pruner.calls.Load())
}
