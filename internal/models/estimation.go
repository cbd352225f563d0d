package models

import (
	"errors"
	"math"
	"time"
)

// BackupPriority classifies which household loads a battery system must
// carry during an outage. Unknown values resolve to PriorityEssential.
type BackupPriority string

const (
	PriorityEssential  BackupPriority = "essential"
	PriorityPartial    BackupPriority = "partial"
	PriorityWholeHouse BackupPriority = "whole_house"
)

// Defaults applied to an EstimationRequest when the caller omits a field.
const (
	DefaultAreaM2       = 20.0
	DefaultEfficiency   = 0.18
	DefaultPanelTilt    = 15.0
	DefaultPanelWatts   = 450.0
	DefaultAutonomyDays = 1.0
	DefaultRegion       = RegionSouthWest
)

// Validation errors surfaced by EstimationRequest.Validate.
var (
	ErrInvalidCoordinates = errors.New("latitude and longitude must be finite numbers")
	ErrInvalidArea        = errors.New("area must be a positive number of square meters")
	ErrInvalidEfficiency  = errors.New("efficiency must be a fraction in (0, 1]")
	ErrInvalidTilt        = errors.New("panel tilt must be between 0 and 90 degrees")
	ErrInvalidCost        = errors.New("system cost must not be negative")
	ErrInvalidAutonomy    = errors.New("autonomy days must be a positive number")
)

// EstimationRequest carries the parameters of a single solar estimation.
// It has no persisted identity; one is created per incoming call.
type EstimationRequest struct {
	Location       GeoPoint       // Location to estimate for.
	Area           float64        // Collector area, m².
	Efficiency     float64        // Panel conversion efficiency, fraction.
	PanelTilt      *float64       // Panel tilt, degrees from horizontal; nil means the default. Zero is a flat mount, not an omission.
	Region         Region         // Climatic region tag.
	HasBattery     bool           // Whether the system includes battery storage.
	SystemCost     float64        // System cost in USD; 0 disables the financial block.
	PanelWatts     float64        // Rated panel output, watts.
	AutonomyDays   *float64       // Days of battery autonomy to size for; nil means the default.
	BackupPriority BackupPriority // Loads the battery must carry.
}

// ApplyDefaults fills omitted optional fields with the documented
// defaults. Fields where zero is invalid anyway treat zero as omitted;
// tilt and autonomy are pointers because zero is a legitimate value for
// them, so only nil marks an omission. Region and backup priority stay
// permissive: unknown tags are resolved downstream, not rejected here.
func (r *EstimationRequest) ApplyDefaults() {
	if r.Area == 0 {
		r.Area = DefaultAreaM2
	}
	if r.Efficiency == 0 {
		r.Efficiency = DefaultEfficiency
	}
	if r.PanelTilt == nil {
		tilt := DefaultPanelTilt
		r.PanelTilt = &tilt
	}
	if r.Region == "" {
		r.Region = DefaultRegion
	}
	if r.PanelWatts == 0 {
		r.PanelWatts = DefaultPanelWatts
	}
	if r.AutonomyDays == nil {
		days := DefaultAutonomyDays
		r.AutonomyDays = &days
	}
	if r.BackupPriority == "" {
		r.BackupPriority = PriorityEssential
	}
}

// Validate checks the numeric bounds of the request. It assumes defaults
// have already been applied.
func (r *EstimationRequest) Validate() error {
	if !isFinite(r.Location.Latitude) || !isFinite(r.Location.Longitude) {
		return ErrInvalidCoordinates
	}
	if !isFinite(r.Area) || r.Area <= 0 {
		return ErrInvalidArea
	}
	if !isFinite(r.Efficiency) || r.Efficiency <= 0 || r.Efficiency > 1 {
		return ErrInvalidEfficiency
	}
	if r.PanelTilt == nil || !isFinite(*r.PanelTilt) || *r.PanelTilt < 0 || *r.PanelTilt > 90 {
		return ErrInvalidTilt
	}
	if !isFinite(r.SystemCost) || r.SystemCost < 0 {
		return ErrInvalidCost
	}
	if r.AutonomyDays == nil || !isFinite(*r.AutonomyDays) || *r.AutonomyDays <= 0 {
		return ErrInvalidAutonomy
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SolarData is the energy block of an estimation result. Values are
// unrounded; display rounding happens at the HTTP boundary.
type SolarData struct {
	DailyIrradiance  float64 // Irradiance used for the estimate, kWh/m²/day.
	AnnualEnergyKWh  float64 // Estimated annual output, kWh.
	MonthlyEnergyKWh float64 // Annual output divided over twelve months, kWh.
	PerformanceRatio float64 // Fraction of theoretical output delivered after losses.
}

// Benefits quantifies the environmental and monetary upside of the
// estimated annual output.
type Benefits struct {
	CarbonOffsetTons float64 // Grid emissions avoided, metric tons CO₂/year.
	AnnualSavingsNGN float64 // Savings at the local tariff, naira/year.
	AnnualSavingsUSD float64 // Savings at the USD tariff, dollars/year.
	EquivalentHomes  float64 // Average Nigerian homes powered for a year.
	EquivalentTrees  float64 // Trees absorbing the same CO₂ per year.
}

// Financials projects the system investment over its lifetime. Present
// on a result only when the request carried a positive system cost.
type Financials struct {
	SimplePaybackYears  float64 // Cost divided by first-year savings; 0 when savings are zero.
	Total25YrSavingsUSD float64 // Degradation-adjusted savings over 25 years.
	ROIPercent          float64 // Lifetime return on the invested cost, percent.
}

// SystemSizing estimates how many panels fit the collector area.
type SystemSizing struct {
	EstimatedPanels int     // Panel count fitting the usable area.
	SystemSizeKW    float64 // Combined rated output, kW.
}

// BatterySizing estimates storage for the requested autonomy.
type BatterySizing struct {
	UsableEnergyKWh  float64 // Energy the battery must deliver per autonomy window.
	CapacityKWh      float64 // Nameplate capacity after depth-of-discharge derating.
	EstimatedCostUSD float64 // Capacity priced at the fixed per-kWh rate.
}

// EstimationResult is the full outcome of one estimation request. It is
// ephemeral and owned by the caller; only a summary is ever persisted.
type EstimationResult struct {
	Location   GeoPoint
	Source     string     // "remote" or "cached", per the winning resolver.
	Month      time.Month // Calendar month whose seasonal factor was applied.
	Solar      SolarData
	Benefits   Benefits
	Sizing     SystemSizing
	Battery    *BatterySizing // Present when the request has a battery.
	Financials *Financials    // Present when the request carried a cost.
}

// EstimateSummary is the persisted form of a result, handed to the
// estimate store after a successful estimation.
type EstimateSummary struct {
	ID               int       `json:"id"`
	Location         string    `json:"location"` // Nearest catalog city, as a human-readable anchor.
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	AreaM2           float64   `json:"area_m2"`
	AnnualEnergyKWh  float64   `json:"annual_energy_kwh"`
	AnnualSavingsUSD float64   `json:"annual_savings_usd"`
	CarbonOffsetTons float64   `json:"carbon_offset_tons"`
	Source           string    `json:"data_source"`
	CreatedAt        time.Time `json:"created_at"`
}
