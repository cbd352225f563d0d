package solar

import (
	"math"

	"github.com/seewa-ng/helios/internal/models"
)

// Panel and battery sizing constants.
const (
	// PanelAreaM2 is the footprint of a single panel.
	PanelAreaM2 = 1.8
	// UsableAreaFraction discounts roof edges, walkways and spacing.
	UsableAreaFraction = 0.85
	// BatteryUsableFraction combines depth-of-discharge and conversion
	// losses when translating delivered energy into nameplate capacity.
	BatteryUsableFraction = 0.85
	// BatteryCostUSDPerKWh is the installed storage price estimate.
	BatteryCostUSDPerKWh = 300.0
)

// loadFactors maps a backup priority tier to the share of daily
// consumption the battery must carry.
var loadFactors = map[models.BackupPriority]float64{
	models.PriorityEssential:  0.3,
	models.PriorityPartial:    0.6,
	models.PriorityWholeHouse: 1.0,
}

// SizePanels estimates how many panels fit the collector area and the
// resulting rated system size in kW.
func SizePanels(areaM2, panelWatts float64) models.SystemSizing {
	panels := int(math.Floor(areaM2 * UsableAreaFraction / PanelAreaM2))
	return models.SystemSizing{
		EstimatedPanels: panels,
		SystemSizeKW:    float64(panels) * panelWatts / 1000,
	}
}

// SizeBattery estimates storage for the requested autonomy. Unknown
// priority tiers fall back to the essential tier rather than failing.
func SizeBattery(dailyEnergyKWh, autonomyDays float64, priority models.BackupPriority) models.BatterySizing {
	factor, ok := loadFactors[priority]
	if !ok {
		factor = loadFactors[models.PriorityEssential]
	}

	usable := dailyEnergyKWh * factor * autonomyDays
	capacity := usable / BatteryUsableFraction

	return models.BatterySizing{
		UsableEnergyKWh:  usable,
		CapacityKWh:      capacity,
		EstimatedCostUSD: capacity * BatteryCostUSDPerKWh,
	}
}
