package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/infra/metrics"
	"dispatch/internal/usecase"
)

const (
	defaultVehicleCount = 1
	defaultResultTTL    = 5 * time.Minute
)

// OptimizerServiceParams holds dependencies for the optimizer, injected by Fx.
type OptimizerServiceParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Cache         repository.ResultCache
	Partitioner   service.StopPartitioner
	Estimator     service.ScheduleEstimator
	Fingerprinter service.RequestFingerprinter
	IDGenerator   service.IDGenerator
}

type optimizerService struct {
	cache         repository.ResultCache
	partitioner   service.StopPartitioner
	estimator     service.ScheduleEstimator
	fingerprinter service.RequestFingerprinter
	ids           service.IDGenerator
	logger        *slog.Logger

	defaultDepot entity.Coordinate
	resultTTL    time.Duration

	// now is the request-time clock, injectable so tests can pin timestamps.
	now func() time.Time
}

// NewOptimizerService creates the optimization orchestrator.
func NewOptimizerService(params OptimizerServiceParams) usecase.OptimizerUsecase {
	cfg := params.Config

	// Engine defaults when the hosting config omits the sections. The
	// injected config is shared, so fallbacks stay local.
	var defaultDepot entity.Coordinate
	if cfg.Optimizer != nil {
		defaultDepot = entity.Coordinate{Lat: cfg.Optimizer.DepotLat, Lng: cfg.Optimizer.DepotLng}
	}

	resultTTL := defaultResultTTL
	if cfg.Cache != nil && cfg.Cache.TTL > 0 {
		resultTTL = cfg.Cache.TTL
	}

	return &optimizerService{
		cache:         params.Cache,
		partitioner:   params.Partitioner,
		estimator:     params.Estimator,
		fingerprinter: params.Fingerprinter,
		ids:           params.IDGenerator,
		logger:        params.Logger,
		defaultDepot:  defaultDepot,
		resultTTL:     resultTTL,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *optimizerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *optimizerService) Optimize(ctx context.Context, req *entity.OptimizeRequest) (*entity.OptimizeResponse, error) {
	started := time.Now()
	defer func() {
		metrics.OptimizeDuration.Observe(time.Since(started).Seconds())
	}()

	// Single validation pass before any cache interaction.
	if len(req.Stops) == 0 {
		metrics.OptimizeRequests.WithLabelValues("invalid").Inc()

		return nil, domainerrors.ErrInvalidRequest
	}

	vehicleCount := req.VehicleCount
	if vehicleCount < defaultVehicleCount {
		vehicleCount = defaultVehicleCount
	}

	depot := s.defaultDepot
	if req.Depot != nil {
		depot = *req.Depot
	}

	if err := checkCoordinates(depot, req.Stops); err != nil {
		metrics.OptimizeRequests.WithLabelValues("error").Inc()

		return nil, domainerrors.ErrComputationFailed.WithDetails(err.Error())
	}

	// The normalized request is what gets fingerprinted, so a request that
	// spells out the defaults shares a cache entry with one that omits them.
	normalized := entity.OptimizeRequest{
		Stops:        req.Stops,
		VehicleCount: vehicleCount,
		Depot:        &depot,
	}

	key, err := s.fingerprinter.Fingerprint(&normalized)
	if err != nil {
		metrics.OptimizeRequests.WithLabelValues("error").Inc()

		return nil, domainerrors.ErrComputationFailed.WithDetails(err.Error())
	}

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		metrics.CacheEvents.WithLabelValues("hit").Inc()
		metrics.OptimizeRequests.WithLabelValues("cached").Inc()
		s.log(ctx).DebugContext(ctx, "optimize cache hit", slog.String("fingerprint", key))

		return cached, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		metrics.OptimizeRequests.WithLabelValues("error").Inc()

		return nil, domainerrors.ErrCacheUnavailable.WithDetails(err.Error())
	}
	metrics.CacheEvents.WithLabelValues("miss").Inc()

	res := s.compute(&normalized, depot)

	if err := s.cache.Set(ctx, key, res, s.resultTTL); err != nil {
		metrics.OptimizeRequests.WithLabelValues("error").Inc()

		return nil, domainerrors.ErrCacheUnavailable.WithDetails(err.Error())
	}

	metrics.OptimizeRequests.WithLabelValues("computed").Inc()
	s.log(ctx).InfoContext(ctx, "optimize computed",
		slog.String("fingerprint", key),
		slog.String("response_id", res.ID),
		slog.Int("stops", len(req.Stops)),
		slog.Int("vehicles", vehicleCount),
		slog.Int("routes", len(res.Routes)),
	)

	return res, nil
}

// compute runs the partition/estimate/aggregate pipeline for a cache miss.
func (s *optimizerService) compute(req *entity.OptimizeRequest, depot entity.Coordinate) *entity.OptimizeResponse {
	requestTime := s.now().UTC()

	buckets := s.partitioner.Partition(req.Stops, req.VehicleCount)

	routes := make([]entity.Route, 0, len(buckets))
	totalDistance := 0.0
	totalTime := 0

	for i, bucket := range buckets {
		// Vehicles with nothing assigned are omitted from the response.
		if len(bucket) == 0 {
			continue
		}

		route := s.estimator.Estimate(depot, bucket, requestTime, i+1)

		totalDistance += route.Distance
		// Routes run in parallel, so total time is the slowest route.
		if route.Time > totalTime {
			totalTime = route.Time
		}

		routes = append(routes, route)
	}

	return &entity.OptimizeResponse{
		ID:            s.ids.NewID(),
		VehicleCount:  req.VehicleCount,
		Routes:        routes,
		TotalDistance: totalDistance,
		TotalTime:     totalTime,
		ETA:           requestTime.Add(time.Duration(totalTime) * time.Minute),
	}
}

func checkCoordinates(depot entity.Coordinate, stops []entity.Stop) error {
	if !depot.Valid() {
		return fmt.Errorf("depot coordinate (%f, %f) out of range", depot.Lat, depot.Lng)
	}
	for _, stop := range stops {
		if !stop.Coordinate.Valid() {
			return fmt.Errorf("stop %q coordinate (%f, %f) out of range", stop.ID, stop.Coordinate.Lat, stop.Coordinate.Lng)
		}
	}

	return nil
}
