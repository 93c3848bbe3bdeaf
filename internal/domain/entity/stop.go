package entity

import "time"

// TimeWindow is an optional delivery window attached to a stop.
// It is recorded and carried through responses but is not consumed by the
// current partition heuristic.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Stop is a single delivery location within an optimize request.
// The ID is unique within one request; Priority and TimeWindow are optional
// scheduling metadata.
type Stop struct {
	ID         string      `json:"id"`
	Coordinate Coordinate  `json:"coordinate"`
	Priority   *int        `json:"priority,omitempty"`
	TimeWindow *TimeWindow `json:"time_window,omitempty"`
}
