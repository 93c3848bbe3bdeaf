package routing

import (
	"testing"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_ThreeStops(t *testing.T) {
	e := NewScheduleEstimator()

	depot := entity.Coordinate{Lat: 40.7128, Lng: -74.0060}
	bucket := []entity.Stop{
		{ID: "a", Coordinate: entity.Coordinate{Lat: 40.73, Lng: -74.00}},
		{ID: "b", Coordinate: entity.Coordinate{Lat: 40.75, Lng: -73.99}},
		{ID: "c", Coordinate: entity.Coordinate{Lat: 40.77, Lng: -73.98}},
	}
	requestTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	route := e.Estimate(depot, bucket, requestTime, 1)

	assert.Equal(t, 1, route.VehicleID)
	require.Len(t, route.Stops, 3)

	// Sequence is contiguous 1..n in input order.
	for i, stop := range route.Stops {
		assert.Equal(t, i+1, stop.Sequence)
		assert.Equal(t, bucket[i].ID, stop.ID)
	}

	// Arrivals advance 15 minutes per stop, departures add a 5 minute dwell.
	assert.Equal(t, requestTime.Add(15*time.Minute), route.Stops[0].EstimatedArrival)
	assert.Equal(t, requestTime.Add(20*time.Minute), route.Stops[0].EstimatedDeparture)
	assert.Equal(t, requestTime.Add(30*time.Minute), route.Stops[1].EstimatedArrival)
	assert.Equal(t, requestTime.Add(45*time.Minute), route.Stops[2].EstimatedArrival)
	assert.Equal(t, requestTime.Add(50*time.Minute), route.Stops[2].EstimatedDeparture)

	// The flat route total is its own model: 20 minutes per stop.
	assert.Equal(t, 60, route.Time)

	// Distance is the closed loop through the depot.
	want := PathDistance([]entity.Coordinate{
		depot,
		bucket[0].Coordinate,
		bucket[1].Coordinate,
		bucket[2].Coordinate,
		depot,
	})
	assert.InDelta(t, want, route.Distance, 1e-9)
}

func TestEstimate_EmptyBucket(t *testing.T) {
	e := NewScheduleEstimator()

	route := e.Estimate(entity.Coordinate{Lat: 1, Lng: 2}, nil, time.Now(), 3)

	assert.Equal(t, 3, route.VehicleID)
	assert.Empty(t, route.Stops)
	assert.Equal(t, 0, route.Time)
	assert.Equal(t, 0.0, route.Distance)
}
