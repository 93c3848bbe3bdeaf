package service

import "dispatch/internal/domain/entity"

// RequestFingerprinter derives the cache identity of an optimize request.
type RequestFingerprinter interface {
	// Fingerprint returns a compact printable string that is identical for
	// identical (stops, vehicleCount, depot) triples and differs for any
	// change in stop order, vehicle count, or coordinates.
	Fingerprint(req *entity.OptimizeRequest) (string, error)
}
