package solar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seewa-ng/helios/internal/models"
	"github.com/seewa-ng/helios/internal/solar"
)

func TestSizePanels(t *testing.T) {
	t.Parallel()

	t.Run("20 m² fits nine 450 W panels", func(t *testing.T) {
		t.Parallel()

		sizing := solar.SizePanels(20, 450)
		assert.Equal(t, 9, sizing.EstimatedPanels) // floor(20*0.85/1.8) = floor(9.44)
		assert.InDelta(t, 4.05, sizing.SystemSizeKW, 1e-9)
	})

	t.Run("panel wattage scales system size, not count", func(t *testing.T) {
		t.Parallel()

		small := solar.SizePanels(20, 300)
		large := solar.SizePanels(20, 600)
		assert.Equal(t, small.EstimatedPanels, large.EstimatedPanels)
		assert.InDelta(t, 2*small.SystemSizeKW, large.SystemSizeKW, 1e-9)
	})

	t.Run("tiny area fits zero panels", func(t *testing.T) {
		t.Parallel()

		sizing := solar.SizePanels(1, 450)
		assert.Equal(t, 0, sizing.EstimatedPanels)
		assert.Zero(t, sizing.SystemSizeKW)
	})
}

func TestSizeBattery(t *testing.T) {
	t.Parallel()

	t.Run("partial tier over two autonomy days", func(t *testing.T) {
		t.Parallel()

		battery := solar.SizeBattery(10, 2, models.PriorityPartial)

		require.InDelta(t, 12.0, battery.UsableEnergyKWh, 1e-9)           // 10 × 0.6 × 2
		require.InDelta(t, 12.0/0.85, battery.CapacityKWh, 1e-9)          // ≈ 14.1 kWh
		require.InDelta(t, 12.0/0.85*300, battery.EstimatedCostUSD, 1e-6) // ≈ $4235
	})

	t.Run("tier load factors", func(t *testing.T) {
		t.Parallel()

		essential := solar.SizeBattery(10, 1, models.PriorityEssential)
		partial := solar.SizeBattery(10, 1, models.PriorityPartial)
		whole := solar.SizeBattery(10, 1, models.PriorityWholeHouse)

		assert.InDelta(t, 3.0, essential.UsableEnergyKWh, 1e-9)
		assert.InDelta(t, 6.0, partial.UsableEnergyKWh, 1e-9)
		assert.InDelta(t, 10.0, whole.UsableEnergyKWh, 1e-9)
	})

	t.Run("unknown tier defaults to essential", func(t *testing.T) {
		t.Parallel()

		unknown := solar.SizeBattery(10, 2, models.BackupPriority("luxury"))
		essential := solar.SizeBattery(10, 2, models.PriorityEssential)
		assert.Equal(t, essential, unknown)
	})
}
