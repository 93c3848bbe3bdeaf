package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/infra/routing"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cache: &config.CacheConfig{
			TTL: 5 * time.Minute,
		},
		Optimizer: &config.OptimizerConfig{
			DepotLat: 40.7128,
			DepotLng: -74.0060,
		},
	}
}

// mockResultCache is a testify mock for the ResultCache port.
type mockResultCache struct {
	mock.Mock
}

func (m *mockResultCache) Get(ctx context.Context, key string) (*entity.OptimizeResponse, error) {
	args := m.Called(ctx, key)
	if res := args.Get(0); res != nil {
		return res.(*entity.OptimizeResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockResultCache) Set(ctx context.Context, key string, res *entity.OptimizeResponse, ttl time.Duration) error {
	args := m.Called(ctx, key, res, ttl)

	return args.Error(0)
}

// countingPartitioner wraps the real partitioner and records call counts so
// tests can observe whether the compute path ran.
type countingPartitioner struct {
	inner service.StopPartitioner
	calls int
}

func newCountingPartitioner() *countingPartitioner {
	return &countingPartitioner{inner: routing.NewStopPartitioner()}
}

func (p *countingPartitioner) Partition(stops []entity.Stop, vehicleCount int) [][]entity.Stop {
	p.calls++

	return p.inner.Partition(stops, vehicleCount)
}

type countingEstimator struct {
	inner service.ScheduleEstimator
	calls int
}

func newCountingEstimator() *countingEstimator {
	return &countingEstimator{inner: routing.NewScheduleEstimator()}
}

func (e *countingEstimator) Estimate(depot entity.Coordinate, bucket []entity.Stop, requestTime time.Time, vehicleID int) entity.Route {
	e.calls++

	return e.inner.Estimate(depot, bucket, requestTime, vehicleID)
}

// sequentialIDs pins deterministic response identifiers.
type sequentialIDs struct {
	next int
}

func (g *sequentialIDs) NewID() string {
	g.next++

	return fmt.Sprintf("res-%d", g.next)
}
