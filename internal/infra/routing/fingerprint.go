package routing

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
)

// fingerprintPayload fixes the serialized field order. Stop order is kept
// as-is because it is semantically significant: it drives the partitioner.
type fingerprintPayload struct {
	Stops    []fingerprintStop  `json:"stops"`
	Vehicles int                `json:"vehicles"`
	Depot    *entity.Coordinate `json:"depot"`
}

type fingerprintStop struct {
	ID         string             `json:"id"`
	Lat        float64            `json:"lat"`
	Lng        float64            `json:"lng"`
	Priority   *int               `json:"priority,omitempty"`
	TimeWindow *entity.TimeWindow `json:"timeWindow,omitempty"`
}

type requestFingerprinter struct{}

// NewRequestFingerprinter creates the canonical request fingerprinter.
func NewRequestFingerprinter() service.RequestFingerprinter {
	return &requestFingerprinter{}
}

// Fingerprint serializes (stops, vehicleCount, depot) into canonical JSON,
// hashes it with SHA-256, and encodes the digest as unpadded base64url.
func (f *requestFingerprinter) Fingerprint(req *entity.OptimizeRequest) (string, error) {
	payload := fingerprintPayload{
		Stops:    make([]fingerprintStop, 0, len(req.Stops)),
		Vehicles: req.VehicleCount,
		Depot:    req.Depot,
	}
	for _, stop := range req.Stops {
		payload.Stops = append(payload.Stops, fingerprintStop{
			ID:         stop.ID,
			Lat:        stop.Coordinate.Lat,
			Lng:        stop.Coordinate.Lng,
			Priority:   stop.Priority,
			TimeWindow: stop.TimeWindow,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "serialize fingerprint payload")
	}

	digest := sha256.Sum256(data)

	return base64.RawURLEncoding.EncodeToString(digest[:]), nil
}
