// Package service defines domain service interfaces implemented by infra.
package service

import "dispatch/internal/domain/entity"

// StopPartitioner splits an ordered stop list into per-vehicle buckets.
type StopPartitioner interface {
	// Partition returns exactly vehicleCount buckets consuming the input
	// in order. Bucket sizes are within one of each other, larger buckets
	// first; a bucket may be empty only when there are fewer stops than
	// vehicles. Stops are never reordered.
	Partition(stops []entity.Stop, vehicleCount int) [][]entity.Stop
}
