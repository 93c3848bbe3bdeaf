package usecase

import (
	"context"

	"dispatch/internal/domain/entity"
)

// OptimizerUsecase is the public contract of the route-optimization engine.
type OptimizerUsecase interface {
	// Optimize validates the request, consults the result cache under the
	// request fingerprint, and on a miss partitions the stops across the
	// fleet, estimates each route, aggregates totals, and memoizes the
	// response. Cached hits are returned verbatim. Cache faults fail the
	// call; there is no uncached fallback.
	Optimize(ctx context.Context, req *entity.OptimizeRequest) (*entity.OptimizeResponse, error)
}
