// Package stats aggregates fleet-wide counters for the dashboard. Counts
// are grouped by status and cached in redis so the dashboard does not hit
// the database on every page load.
package stats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"robot-rental-admin/internal/logger"
)

const (
	dashboardCacheKey = "stats:dashboard"
	dashboardCacheTTL = 5 * time.Minute
)

// StatusCounter is implemented by every repository that can group its rows
// by status (or type, for customers).
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type TypeCounter interface {
	CountByType(ctx context.Context) (map[string]int64, error)
}

// Cache is the slice of the redis wrapper the stats service needs.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Dashboard struct {
	CustomersByType map[string]int64 `json:"customers_by_type"`
	DevicesByStatus map[string]int64 `json:"devices_by_status"`
	OrdersByStatus  map[string]int64 `json:"orders_by_status"`
	RentalsByStatus map[string]int64 `json:"rentals_by_status"`
	RefreshedAt     time.Time        `json:"refreshed_at"`
}

type Service struct {
	customers TypeCounter
	devices   StatusCounter
	orders    StatusCounter
	rentals   StatusCounter
	cache     Cache
}

func NewService(customers TypeCounter, devices, orders, rentals StatusCounter, cache Cache) *Service {
	return &Service{
		customers: customers,
		devices:   devices,
		orders:    orders,
		rentals:   rentals,
		cache:     cache,
	}
}

// Dashboard returns the cached counters, falling back to a live refresh
// when the cache is empty or unreachable.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	if s.cache != nil {
		var cached Dashboard
		found, err := s.cache.GetJSON(ctx, dashboardCacheKey, &cached)
		if err != nil {
			logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		if found {
			return &cached, nil
		}
	}

	return s.Refresh(ctx)
}

// Refresh recomputes every counter from the database and rewrites the
// cache entry.
func (s *Service) Refresh(ctx context.Context) (*Dashboard, error) {
	customers, err := s.customers.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	devices, err := s.devices.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentals.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		CustomersByType: customers,
		DevicesByStatus: devices,
		OrdersByStatus:  orders,
		RentalsByStatus: rentals,
		RefreshedAt:     time.Now(),
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, dashboardCacheKey, dashboard, dashboardCacheTTL); err != nil {
			logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}

	return dashboard, nil
}

// Invalidate drops the cached dashboard so the next read recomputes.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardCacheKey); err != nil {
		logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
