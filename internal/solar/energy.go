package solar

import (
	"time"

	"github.com/seewa-ng/helios/internal/models"
)

// seasonalFactors adjusts output for Nigeria's wet/dry season swing,
// one multiplier per calendar month. Dry-season harmattan months run
// above average, the July/August rains well below.
var seasonalFactors = [12]float64{
	1.08, // January
	1.10, // February
	1.12, // March
	1.04, // April
	0.96, // May
	0.88, // June
	0.80, // July
	0.82, // August
	0.90, // September
	0.97, // October
	1.05, // November
	1.08, // December
}

// SeasonalFactor returns the output multiplier for a calendar month.
func SeasonalFactor(month time.Month) float64 {
	return seasonalFactors[month-1]
}

// AnnualEnergy estimates the yearly output in kWh:
//
//	irradiance × area × efficiency × TotalLoss × 365 × seasonal factor
//
// The month is an explicit parameter rather than a hidden clock read so
// the computation stays deterministic; callers inject "now" themselves.
func AnnualEnergy(
	irradiance, area, efficiency float64,
	region models.Region,
	panelTilt float64,
	hasBattery bool,
	month time.Month,
) float64 {
	daily := irradiance * area * efficiency * TotalLoss(region, panelTilt, hasBattery)
	return daily * 365 * SeasonalFactor(month)
}
