package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/seewa-ng/helios/internal/models"
)

// estimateRequest is the JSON payload of the estimation endpoint.
// Pointers distinguish "omitted" from zero so defaults apply correctly.
type estimateRequest struct {
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Area           *float64 `json:"area"`
	Efficiency     *float64 `json:"efficiency"`
	PanelTilt      *float64 `json:"panel_tilt"`
	Region         *string  `json:"region"`
	HasBattery     *bool    `json:"has_battery"`
	SystemCost     *float64 `json:"system_cost"`
	PanelWatts     *float64 `json:"panel_watts"`
	AutonomyDays   *float64 `json:"autonomy_days"`
	BackupPriority *string  `json:"backup_priority"`
}

type estimateResponse struct {
	Success    bool            `json:"success"`
	DataSource string          `json:"data_source"`
	Location   locationJSON    `json:"location"`
	SolarData  solarDataJSON   `json:"solar_data"`
	Benefits   benefitsJSON    `json:"benefits"`
	SystemSize sizingJSON      `json:"system_size"`
	Battery    *batteryJSON    `json:"battery,omitempty"`
	Financials *financialsJSON `json:"financials,omitempty"`
	Parameters parametersJSON  `json:"parameters"`
}

type locationJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type solarDataJSON struct {
	DailyIrradiance  float64 `json:"daily_irradiance"`
	AnnualEnergyKWh  float64 `json:"annual_energy_kwh"`
	MonthlyEnergyKWh float64 `json:"monthly_energy_kwh"`
	PerformanceRatio float64 `json:"performance_ratio"`
}

type benefitsJSON struct {
	CarbonOffsetTons float64 `json:"carbon_offset_tons"`
	AnnualSavingsNGN float64 `json:"annual_savings_ngn"`
	AnnualSavingsUSD float64 `json:"annual_savings_usd"`
	EquivalentHomes  float64 `json:"equivalent_homes"`
	EquivalentTrees  float64 `json:"equivalent_trees"`
}

type sizingJSON struct {
	EstimatedPanels int     `json:"estimated_panels"`
	SystemSizeKW    float64 `json:"system_size_kw"`
}

type batteryJSON struct {
	UsableEnergyKWh  float64 `json:"usable_energy_kwh"`
	CapacityKWh      float64 `json:"capacity_kwh"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}

type financialsJSON struct {
	SimplePaybackYears  float64 `json:"simple_payback_years"`
	Total25YrSavingsUSD float64 `json:"total_25yr_savings_usd"`
	ROIPercent          float64 `json:"roi_percent"`
}

type parametersJSON struct {
	Area         float64 `json:"area"`
	Efficiency   float64 `json:"efficiency"`
	PanelTilt    float64 `json:"panel_tilt"`
	Region       string  `json:"region"`
	HasBattery   bool    `json:"has_battery"`
	SystemCost   float64 `json:"system_cost"`
	PanelWatts   float64 `json:"panel_watts"`
	AppliedMonth int     `json:"applied_month"`
}

// SolarEstimate handles the estimation endpoint. Invalid input gets a
// 400 with the uniform failure payload; remote-source trouble never
// surfaces here because the resolver chain degrades internally.
func (s *Server) SolarEstimate(w http.ResponseWriter, r *http.Request) {
	var payload estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	if payload.Latitude == nil || payload.Longitude == nil {
		s.writeError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}

	req := models.EstimationRequest{
		Location: models.GeoPoint{Latitude: *payload.Latitude, Longitude: *payload.Longitude},
	}
	if payload.Area != nil {
		req.Area = *payload.Area
	}
	if payload.Efficiency != nil {
		req.Efficiency = *payload.Efficiency
	}
	// Tilt and autonomy keep their pointer form: an explicit zero is a
	// real value for both, so only a missing key falls to the default.
	req.PanelTilt = payload.PanelTilt
	if payload.Region != nil {
		req.Region = models.Region(*payload.Region)
	}
	if payload.HasBattery != nil {
		req.HasBattery = *payload.HasBattery
	}
	if payload.SystemCost != nil {
		req.SystemCost = *payload.SystemCost
	}
	if payload.PanelWatts != nil {
		req.PanelWatts = *payload.PanelWatts
	}
	req.AutonomyDays = payload.AutonomyDays
	if payload.BackupPriority != nil {
		req.BackupPriority = models.BackupPriority(*payload.BackupPriority)
	}

	result, err := s.estimator.Estimate(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.ErrorContext(r.Context(), "Estimation failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "estimation failed")
		return
	}

	// Defaults were applied inside the service; re-apply here so the
	// echoed parameters match what was actually computed.
	req.ApplyDefaults()
	s.writeJSON(w, http.StatusOK, buildEstimateResponse(req, result))
}

// buildEstimateResponse applies the display rounding policy: one
// decimal for tons and homes, integers for savings and trees. Rounding
// happens only here so the engine keeps full precision internally.
func buildEstimateResponse(req models.EstimationRequest, result *models.EstimationResult) estimateResponse {
	resp := estimateResponse{
		Success:    true,
		DataSource: result.Source,
		Location:   locationJSON{Lat: result.Location.Latitude, Lng: result.Location.Longitude},
		SolarData: solarDataJSON{
			DailyIrradiance:  round2(result.Solar.DailyIrradiance),
			AnnualEnergyKWh:  math.Round(result.Solar.AnnualEnergyKWh),
			MonthlyEnergyKWh: math.Round(result.Solar.MonthlyEnergyKWh),
			PerformanceRatio: round2(result.Solar.PerformanceRatio),
		},
		Benefits: benefitsJSON{
			CarbonOffsetTons: round1(result.Benefits.CarbonOffsetTons),
			AnnualSavingsNGN: math.Round(result.Benefits.AnnualSavingsNGN),
			AnnualSavingsUSD: math.Round(result.Benefits.AnnualSavingsUSD),
			EquivalentHomes:  round1(result.Benefits.EquivalentHomes),
			EquivalentTrees:  math.Round(result.Benefits.EquivalentTrees),
		},
		SystemSize: sizingJSON{
			EstimatedPanels: result.Sizing.EstimatedPanels,
			SystemSizeKW:    round2(result.Sizing.SystemSizeKW),
		},
		Parameters: parametersJSON{
			Area:         req.Area,
			Efficiency:   req.Efficiency,
			PanelTilt:    *req.PanelTilt,
			Region:       string(req.Region),
			HasBattery:   req.HasBattery,
			SystemCost:   req.SystemCost,
			PanelWatts:   req.PanelWatts,
			AppliedMonth: int(result.Month),
		},
	}

	if result.Battery != nil {
		resp.Battery = &batteryJSON{
			UsableEnergyKWh:  round1(result.Battery.UsableEnergyKWh),
			CapacityKWh:      round1(result.Battery.CapacityKWh),
			EstimatedCostUSD: math.Round(result.Battery.EstimatedCostUSD),
		}
	}
	if result.Financials != nil {
		resp.Financials = &financialsJSON{
			SimplePaybackYears:  round1(result.Financials.SimplePaybackYears),
			Total25YrSavingsUSD: math.Round(result.Financials.Total25YrSavingsUSD),
			ROIPercent:          round1(result.Financials.ROIPercent),
		}
	}

	return resp
}

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrInvalidCoordinates) ||
		errors.Is(err, models.ErrInvalidArea) ||
		errors.Is(err, models.ErrInvalidEfficiency) ||
		errors.Is(err, models.ErrInvalidTilt) ||
		errors.Is(err, models.ErrInvalidCost) ||
		errors.Is(err, models.ErrInvalidAutonomy)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
