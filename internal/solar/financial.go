package solar

import "github.com/seewa-ng/helios/internal/models"

// Lifetime projection constants.
const (
	// DegradationRatePerYear is the annual fractional decline in panel
	// output.
	DegradationRatePerYear = 0.005
	// ProjectionYears is the system lifetime the projection covers.
	ProjectionYears = 25
)

// CalculateFinancials projects the investment over the system lifetime.
// Returns nil when systemCost is not positive; the financial block is
// simply absent, never an error. Zero savings yields a zero payback
// rather than a division fault.
func CalculateFinancials(annualEnergyKWh, systemCost float64) *models.Financials {
	if systemCost <= 0 {
		return nil
	}

	annualSavings := annualEnergyKWh * TariffUSDPerKWh

	payback := 0.0
	if annualSavings > 0 {
		payback = systemCost / annualSavings
	}

	// Year-by-year output with compounding degradation, converted to
	// savings at the fixed tariff.
	var totalEnergy float64
	output := annualEnergyKWh
	for year := 1; year <= ProjectionYears; year++ {
		totalEnergy += output
		output *= 1 - DegradationRatePerYear
	}
	totalSavings := totalEnergy * TariffUSDPerKWh

	return &models.Financials{
		SimplePaybackYears:  payback,
		Total25YrSavingsUSD: totalSavings,
		ROIPercent:          (totalSavings - systemCost) / systemCost * 100,
	}
}
