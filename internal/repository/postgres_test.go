package repository_test

import (
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seewa-ng/helios/internal/models"
	"github.com/seewa-ng/helios/internal/repository"
)

const saveEstimateQuery = `
	INSERT INTO estimates (
		location, latitude, longitude, area_m2,
		annual_energy_kwh, annual_savings_usd, carbon_offset_tons, data_source
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

const recentEstimatesQuery = `
	SELECT id, location, latitude, longitude, area_m2,
		annual_energy_kwh, annual_savings_usd, carbon_offset_tons, data_source, created_at
	FROM estimates
	ORDER BY created_at DESC
	LIMIT $1;
`

func testSummary() models.EstimateSummary {
	return models.EstimateSummary{
		Location:         "Lagos",
		Latitude:         6.5244,
		Longitude:        3.3792,
		AreaM2:           20,
		AnnualEnergyKWh:  5600,
		AnnualSavingsUSD: 840,
		CarbonOffsetTons: 3.4,
		Source:           "cached",
	}
}

func TestSaveEstimate(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("success - insert summary", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)
		summary := testSummary()

		mock.ExpectExec(regexp.QuoteMeta(saveEstimateQuery)).
			WithArgs(
				summary.Location, summary.Latitude, summary.Longitude, summary.AreaM2,
				summary.AnnualEnergyKWh, summary.AnnualSavingsUSD, summary.CarbonOffsetTons, summary.Source,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = repo.SaveEstimate(ctx, summary)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - insert fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)
		summary := testSummary()

		mock.ExpectExec(regexp.QuoteMeta(saveEstimateQuery)).
			WithArgs(
				summary.Location, summary.Latitude, summary.Longitude, summary.AreaM2,
				summary.AnnualEnergyKWh, summary.AnnualSavingsUSD, summary.CarbonOffsetTons, summary.Source,
			).
			WillReturnError(assert.AnError)

		err = repo.SaveEstimate(ctx, summary)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to insert estimate summary")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecentEstimates(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	limit := 10

	columns := []string{
		"id", "location", "latitude", "longitude", "area_m2",
		"annual_energy_kwh", "annual_savings_usd", "carbon_offset_tons", "data_source", "created_at",
	}

	t.Run("error - query fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(recentEstimatesQuery)).
			WithArgs(limit).
			WillReturnError(assert.AnError)

		summaries, err := repo.RecentEstimates(ctx, limit)

		require.Nil(t, summaries)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query recent estimates")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan fails", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(recentEstimatesQuery)).
			WithArgs(limit).
			WillReturnRows(
				pgxmock.NewRows(columns).
					AddRow("invalid_id", "Lagos", 6.5244, 3.3792, 20.0, 5600.0, 840.0, 3.4, "cached", time.Now()),
			)

		summaries, err := repo.RecentEstimates(ctx, limit)

		require.Nil(t, summaries)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to scan estimate summary")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(recentEstimatesQuery)).
			WithArgs(limit).
			WillReturnRows(
				pgxmock.NewRows(columns).
					AddRow(1, "Lagos", 6.5244, 3.3792, 20.0, 5600.0, 840.0, 3.4, "cached", time.Now()).
					RowError(1, assert.AnError),
			)

		summaries, err := repo.RecentEstimates(ctx, limit)

		require.Nil(t, summaries)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - fetch summaries", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)
		createdAt := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(recentEstimatesQuery)).
			WithArgs(limit).
			WillReturnRows(
				pgxmock.NewRows(columns).
					AddRow(1, "Lagos", 6.5244, 3.3792, 20.0, 5600.0, 840.0, 3.4, "cached", createdAt),
			)

		summaries, err := repo.RecentEstimates(ctx, limit)

		require.NoError(t, err)
		require.Len(t, summaries, 1)
		summary := summaries[0]
		assert.Equal(t, 1, summary.ID)
		assert.Equal(t, "Lagos", summary.Location)
		assert.InDelta(t, 5600.0, summary.AnnualEnergyKWh, 0)
		assert.Equal(t, "cached", summary.Source)
		assert.Equal(t, createdAt, summary.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
