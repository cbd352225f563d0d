package solar

import "github.com/seewa-ng/helios/internal/models"

// Nigeria-specific benefit constants.
const (
	// EmissionFactorKgPerKWh is the grid carbon intensity, kg CO₂/kWh.
	EmissionFactorKgPerKWh = 0.61
	// TariffNGNPerKWh is the local electricity tariff, naira/kWh.
	TariffNGNPerKWh = 225.0
	// TariffUSDPerKWh is the electricity tariff in US dollars, $/kWh.
	TariffUSDPerKWh = 0.15
	// HomeConsumptionKWhPerYear is an average Nigerian household's
	// annual electricity consumption.
	HomeConsumptionKWhPerYear = 4380.0
	// TreeAbsorptionTonsPerYear is the CO₂ a tree absorbs per year,
	// metric tons.
	TreeAbsorptionTonsPerYear = 0.4
)

// CalculateBenefits converts an annual energy figure into carbon offset,
// tariff savings and everyday equivalents. All values are returned
// unrounded; display rounding is the transport layer's concern so the
// financial projection can keep full precision.
func CalculateBenefits(energyKWh float64) models.Benefits {
	carbonTons := energyKWh * EmissionFactorKgPerKWh / 1000

	return models.Benefits{
		CarbonOffsetTons: carbonTons,
		AnnualSavingsNGN: energyKWh * TariffNGNPerKWh,
		AnnualSavingsUSD: energyKWh * TariffUSDPerKWh,
		EquivalentHomes:  energyKWh / HomeConsumptionKWhPerYear,
		EquivalentTrees:  carbonTons / TreeAbsorptionTonsPerYear,
	}
}
