package routing

import (
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
)

type stopPartitioner struct{}

// NewStopPartitioner creates the deterministic FIFO stop partitioner.
func NewStopPartitioner() service.StopPartitioner {
	return &stopPartitioner{}
}

// Partition consumes the input order front to back, giving each vehicle a
// ceiling share of what remains. The split is as even as possible with
// larger buckets on earlier vehicles; priorities and time windows are not
// sort keys. Proximity clustering is a known, deliberate omission.
func (p *stopPartitioner) Partition(stops []entity.Stop, vehicleCount int) [][]entity.Stop {
	if vehicleCount < 1 {
		vehicleCount = 1
	}

	buckets := make([][]entity.Stop, vehicleCount)
	remaining := stops

	for i := 0; i < vehicleCount; i++ {
		vehiclesLeft := vehicleCount - i
		take := (len(remaining) + vehiclesLeft - 1) / vehiclesLeft

		bucket := make([]entity.Stop, take)
		copy(bucket, remaining[:take])

		buckets[i] = bucket
		remaining = remaining[take:]
	}

	return buckets
}
