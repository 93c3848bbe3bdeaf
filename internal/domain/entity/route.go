package entity

import "time"

// OptimizedStop is a stop placed into a vehicle route with its computed
// position and timing.
type OptimizedStop struct {
	Stop

	// Sequence is 1-based and contiguous within a route.
	Sequence           int       `json:"sequence"`
	EstimatedArrival   time.Time `json:"estimated_arrival"`
	EstimatedDeparture time.Time `json:"estimated_departure"`
}

// Route is the planned tour of one vehicle: an ordered stop sequence plus
// aggregate distance and time metrics. It is immutable planning data.
type Route struct {
	// VehicleID is 1-based and unique within a response.
	VehicleID int             `json:"vehicle_id"`
	Stops     []OptimizedStop `json:"stops"`

	// Distance is the round-trip tour length in kilometers, depot to depot.
	Distance float64 `json:"distance"`

	// Time is the flat per-stop allowance for the whole route in minutes.
	// It deliberately follows a different model than the per-stop
	// arrival/departure estimates; the two are not reconciled.
	Time int `json:"time"`
}
