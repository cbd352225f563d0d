// Package solar implements the estimation engine: the loss model, the
// seasonal energy estimator, and the benefits, financial and sizing
// calculators. Everything here is pure computation over fixed
// Nigeria-specific constants; all I/O lives in the callers.
package solar

import (
	"math"

	"github.com/seewa-ng/helios/internal/models"
)

// Base system loss factors, each a multiplier in (0, 1]. Their product
// is the performance ratio before regional, tilt and battery effects.
const (
	lossSoiling      = 0.97
	lossShading      = 0.98
	lossMismatch     = 0.98
	lossDCWiring     = 0.98
	lossACWiring     = 0.99
	lossInverter     = 0.96
	lossFirstYear    = 0.995
	lossAvailability = 0.98
)

// Tilt model: output drops ~0.3% per degree off the optimal 15° tilt,
// floored at 85% of the tilt-free performance.
const (
	OptimalTiltDegrees = 15.0
	tiltLossPerDegree  = 0.003
	tiltFloor          = 0.85
)

// BatteryRoundTripEfficiency is applied when the system stores energy
// before use.
const BatteryRoundTripEfficiency = 0.92

// regionAdjustment derates output for a region's dust load and ambient
// temperature.
type regionAdjustment struct {
	soiling     float64
	temperature float64
}

// regionAdjustments maps climatic regions to their derating factors.
// The north carries the harmattan dust penalty; the coastal south runs
// cooler and cleaner. Unknown regions get no penalty (1.0, 1.0).
var regionAdjustments = map[models.Region]regionAdjustment{
	models.RegionNorth:      {soiling: 0.94, temperature: 0.96},
	models.RegionMiddleBelt: {soiling: 0.96, temperature: 0.97},
	models.RegionSouthWest:  {soiling: 0.97, temperature: 0.97},
	models.RegionSouthEast:  {soiling: 0.97, temperature: 0.98},
	models.RegionSouthSouth: {soiling: 0.98, temperature: 0.98},
}

// TotalLoss computes the composite performance multiplier for a system:
// base losses × regional adjustment × tilt factor × battery round-trip
// loss when present. The result is in (0, 1] by construction.
func TotalLoss(region models.Region, panelTilt float64, hasBattery bool) float64 {
	loss := lossSoiling * lossShading * lossMismatch * lossDCWiring *
		lossACWiring * lossInverter * lossFirstYear * lossAvailability

	adj, ok := regionAdjustments[region]
	if !ok {
		adj = regionAdjustment{soiling: 1.0, temperature: 1.0}
	}
	loss *= adj.soiling * adj.temperature

	loss *= tiltFactor(panelTilt)

	if hasBattery {
		loss *= BatteryRoundTripEfficiency
	}

	return loss
}

// tiltFactor models the off-optimum tilt penalty.
func tiltFactor(panelTilt float64) float64 {
	return math.Max(tiltFloor, 1-tiltLossPerDegree*math.Abs(panelTilt-OptimalTiltDegrees))
}
