package routing

import (
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
)

// The engine carries two timing notions side by side: per-stop
// arrival/departure estimates advance in fixed 15-minute travel plus
// 5-minute dwell increments, while the route total is a flat 20-minute
// allowance per stop. Consumers read different numbers from each; they are
// intentionally not reconciled.
const (
	travelPerStop = 15 * time.Minute
	dwellPerStop  = 5 * time.Minute

	routeMinutesPerStop = 20
)

type scheduleEstimator struct{}

// NewScheduleEstimator creates the fixed-model schedule estimator.
func NewScheduleEstimator() service.ScheduleEstimator {
	return &scheduleEstimator{}
}

func (e *scheduleEstimator) Estimate(depot entity.Coordinate, bucket []entity.Stop, requestTime time.Time, vehicleID int) entity.Route {
	stops := make([]entity.OptimizedStop, 0, len(bucket))
	for idx, stop := range bucket {
		arrival := requestTime.Add(time.Duration(idx+1) * travelPerStop)
		stops = append(stops, entity.OptimizedStop{
			Stop:               stop,
			Sequence:           idx + 1,
			EstimatedArrival:   arrival,
			EstimatedDeparture: arrival.Add(dwellPerStop),
		})
	}

	// Tour distance is a closed loop: depot, each stop in order, depot.
	points := make([]entity.Coordinate, 0, len(bucket)+2)
	points = append(points, depot)
	for _, stop := range bucket {
		points = append(points, stop.Coordinate)
	}
	points = append(points, depot)

	return entity.Route{
		VehicleID: vehicleID,
		Stops:     stops,
		Distance:  PathDistance(points),
		Time:      len(bucket) * routeMinutesPerStop,
	}
}
