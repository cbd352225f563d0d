package solar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seewa-ng/helios/internal/models"
	"github.com/seewa-ng/helios/internal/solar"
)

func TestSeasonalFactor(t *testing.T) {
	t.Parallel()

	t.Run("covers all twelve months within the documented range", func(t *testing.T) {
		t.Parallel()

		for month := time.January; month <= time.December; month++ {
			factor := solar.SeasonalFactor(month)
			assert.GreaterOrEqual(t, factor, 0.80, "month %s", month)
			assert.LessOrEqual(t, factor, 1.12, "month %s", month)
		}
	})

	t.Run("dry season outproduces the rains", func(t *testing.T) {
		t.Parallel()

		assert.Greater(t, solar.SeasonalFactor(time.February), solar.SeasonalFactor(time.July))
	})
}

func TestAnnualEnergy(t *testing.T) {
	t.Parallel()

	t.Run("reproduces the exact formula", func(t *testing.T) {
		t.Parallel()

		month := time.March
		loss := solar.TotalLoss(models.DefaultRegion, 15, false)
		want := 5.0 * 20 * 0.18 * loss * 365 * solar.SeasonalFactor(month)

		got := solar.AnnualEnergy(5.0, 20, 0.18, models.DefaultRegion, 15, false, month)
		require.InDelta(t, want, got, 1e-9)
	})

	t.Run("scales linearly with area", func(t *testing.T) {
		t.Parallel()

		base := solar.AnnualEnergy(5.0, 20, 0.18, models.RegionNorth, 15, false, time.June)
		doubled := solar.AnnualEnergy(5.0, 40, 0.18, models.RegionNorth, 15, false, time.June)
		assert.InDelta(t, 2*base, doubled, 1e-9)
	})

	t.Run("scales linearly with efficiency", func(t *testing.T) {
		t.Parallel()

		base := solar.AnnualEnergy(5.0, 20, 0.09, models.RegionNorth, 15, false, time.June)
		doubled := solar.AnnualEnergy(5.0, 20, 0.18, models.RegionNorth, 15, false, time.June)
		assert.InDelta(t, 2*base, doubled, 1e-9)
	})

	t.Run("different months legitimately differ", func(t *testing.T) {
		t.Parallel()

		march := solar.AnnualEnergy(5.0, 20, 0.18, models.RegionNorth, 15, false, time.March)
		july := solar.AnnualEnergy(5.0, 20, 0.18, models.RegionNorth, 15, false, time.July)
		assert.Greater(t, march, july)
	})
}
