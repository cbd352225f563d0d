package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/seewa-ng/helios/internal/catalog"
	"github.com/seewa-ng/helios/internal/irradiance"
	"github.com/seewa-ng/helios/internal/metrics"
	"github.com/seewa-ng/helios/internal/models"
	"github.com/seewa-ng/helios/internal/repository"
	"github.com/seewa-ng/helios/internal/solar"
)

// EstimationService runs one solar estimation end to end: validate the
// request, resolve irradiance through the chain, run the engine for the
// current month, and optionally persist a summary. Requests are fully
// independent; the only shared state is the read-only constant tables.
type EstimationService struct {
	log      *slog.Logger         // Logger for logging service activities
	resolver *irradiance.Chain    // Resolver chain for irradiance lookup
	repo     repository.Interface // Estimate store; nil runs compute-only
	metrics  *metrics.Metrics     // Metrics for tracking service performance
	now      func() time.Time     // Clock, injectable for deterministic tests
}

// NewEstimationService creates a new EstimationService. The repository
// may be nil, in which case summaries are not persisted. A nil clock
// defaults to time.Now.
func NewEstimationService(
	log *slog.Logger,
	resolver *irradiance.Chain,
	repo repository.Interface,
	appMetrics *metrics.Metrics,
	now func() time.Time,
) *EstimationService {
	if now == nil {
		now = time.Now
	}
	return &EstimationService{
		log:      log,
		resolver: resolver,
		repo:     repo,
		metrics:  appMetrics,
		now:      now,
	}
}

// Estimate computes the full estimation result for a request. Remote
// resolver faults never surface here; only invalid input or an empty
// resolver chain produce an error.
func (es *EstimationService) Estimate(
	ctx context.Context,
	req models.EstimationRequest,
) (*models.EstimationResult, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		es.metrics.EstimatesProcessed.WithLabelValues("invalid").Inc()
		return nil, err
	}

	startTime := time.Now()
	irr, source, err := es.resolver.Resolve(ctx, req.Location.Latitude, req.Location.Longitude)
	if err != nil {
		es.metrics.EstimatesProcessed.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("failed to resolve irradiance: %w", err)
	}
	es.metrics.ResolveSeconds.WithLabelValues(source).Observe(time.Since(startTime).Seconds())
	es.metrics.IrradianceResolved.WithLabelValues(source).Inc()

	month := es.now().Month()
	loss := solar.TotalLoss(req.Region, *req.PanelTilt, req.HasBattery)
	annual := solar.AnnualEnergy(
		irr, req.Area, req.Efficiency, req.Region, *req.PanelTilt, req.HasBattery, month,
	)

	result := &models.EstimationResult{
		Location: req.Location,
		Source:   source,
		Month:    month,
		Solar: models.SolarData{
			DailyIrradiance:  irr,
			AnnualEnergyKWh:  annual,
			MonthlyEnergyKWh: annual / 12,
			PerformanceRatio: loss,
		},
		Benefits: solar.CalculateBenefits(annual),
		Sizing:   solar.SizePanels(req.Area, req.PanelWatts),
	}

	if req.HasBattery {
		battery := solar.SizeBattery(annual/365, *req.AutonomyDays, req.BackupPriority)
		result.Battery = &battery
	}
	result.Financials = solar.CalculateFinancials(annual, req.SystemCost)

	es.persistSummary(ctx, req, result)

	es.metrics.EstimatesProcessed.WithLabelValues("success").Inc()
	es.log.InfoContext(ctx, "Estimation completed",
		"lat", req.Location.Latitude, "lng", req.Location.Longitude,
		"source", source, "annual_kwh", annual)

	return result, nil
}

// persistSummary hands a summarized result to the estimate store. Store
// faults are logged and counted but never fail the estimation.
func (es *EstimationService) persistSummary(
	ctx context.Context,
	req models.EstimationRequest,
	result *models.EstimationResult,
) {
	if es.repo == nil {
		return
	}

	location := fmt.Sprintf("%.4f,%.4f", req.Location.Latitude, req.Location.Longitude)
	if city, ok := catalog.Nearest(req.Location.Latitude, req.Location.Longitude); ok {
		location = city.Name
	}

	summary := models.EstimateSummary{
		Location:         location,
		Latitude:         req.Location.Latitude,
		Longitude:        req.Location.Longitude,
		AreaM2:           req.Area,
		AnnualEnergyKWh:  result.Solar.AnnualEnergyKWh,
		AnnualSavingsUSD: result.Benefits.AnnualSavingsUSD,
		CarbonOffsetTons: result.Benefits.CarbonOffsetTons,
		Source:           result.Source,
	}

	if err := es.repo.SaveEstimate(ctx, summary); err != nil {
		es.metrics.SaveFailures.Inc()
		es.log.ErrorContext(ctx, "Failed to persist estimate summary", "error", err)
	}
}
