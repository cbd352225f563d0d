package solar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seewa-ng/helios/internal/solar"
)

func TestCalculateBenefits(t *testing.T) {
	t.Parallel()

	t.Run("applies the Nigerian constants", func(t *testing.T) {
		t.Parallel()

		benefits := solar.CalculateBenefits(10000)

		assert.InDelta(t, 6.1, benefits.CarbonOffsetTons, 1e-9)
		assert.InDelta(t, 2250000, benefits.AnnualSavingsNGN, 1e-6)
		assert.InDelta(t, 1500, benefits.AnnualSavingsUSD, 1e-9)
		assert.InDelta(t, 10000.0/4380, benefits.EquivalentHomes, 1e-9)
		assert.InDelta(t, 6.1/0.4, benefits.EquivalentTrees, 1e-9)
	})

	t.Run("linear in energy", func(t *testing.T) {
		t.Parallel()

		single := solar.CalculateBenefits(3500)
		double := solar.CalculateBenefits(7000)

		require.InDelta(t, 2*single.CarbonOffsetTons, double.CarbonOffsetTons, 1e-9)
		require.InDelta(t, 2*single.AnnualSavingsNGN, double.AnnualSavingsNGN, 1e-6)
		require.InDelta(t, 2*single.AnnualSavingsUSD, double.AnnualSavingsUSD, 1e-9)
		require.InDelta(t, 2*single.EquivalentHomes, double.EquivalentHomes, 1e-9)
		require.InDelta(t, 2*single.EquivalentTrees, double.EquivalentTrees, 1e-9)
	})

	t.Run("zero energy yields zero benefits", func(t *testing.T) {
		t.Parallel()

		benefits := solar.CalculateBenefits(0)
		assert.Zero(t, benefits.CarbonOffsetTons)
		assert.Zero(t, benefits.AnnualSavingsUSD)
		assert.Zero(t, benefits.EquivalentTrees)
	})
}
