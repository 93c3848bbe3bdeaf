package service

import (
	"time"

	"dispatch/internal/domain/entity"
)

// ScheduleEstimator turns one vehicle's stop bucket into a sequenced route
// with arrival/departure estimates and aggregate metrics.
type ScheduleEstimator interface {
	// Estimate assigns 1-based sequence numbers in bucket order, computes
	// fixed-model arrival and departure timestamps relative to requestTime,
	// and measures the round-trip tour distance through the depot.
	Estimate(depot entity.Coordinate, bucket []entity.Stop, requestTime time.Time, vehicleID int) entity.Route
}
