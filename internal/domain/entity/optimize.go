package entity

import "time"

// OptimizeRequest is the validated input to the optimization engine.
// Stop order is semantically significant: it drives both the partition
// heuristic and the request fingerprint.
type OptimizeRequest struct {
	Stops        []Stop      `json:"stops"`
	VehicleCount int         `json:"vehicle_count"`
	Depot        *Coordinate `json:"depot,omitempty"`
}

// OptimizeResponse is the full result of one optimization run. Cached
// replays return the stored response verbatim, including ID.
type OptimizeResponse struct {
	ID           string  `json:"id"`
	VehicleCount int     `json:"vehicle_count"`
	Routes       []Route `json:"routes"`

	// TotalDistance is the sum of all route distances in kilometers.
	TotalDistance float64 `json:"total_distance"`

	// TotalTime is the maximum route time in minutes, since vehicles
	// drive their routes in parallel.
	TotalTime int `json:"total_time"`

	// ETA is the request time plus TotalTime.
	ETA time.Time `json:"eta"`
}
