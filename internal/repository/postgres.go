package repository

import (
	"context"
	"fmt"

	"github.com/seewa-ng/helios/internal/models"
)

// SaveEstimate persists a summarized estimation result. Only the
// summary is stored; the full result stays with the caller.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - summary: The summarized result to persist.
//
// Returns an error if the insert fails.
func (r *Repository) SaveEstimate(ctx context.Context, summary models.EstimateSummary) error {
	query := `
		INSERT INTO estimates (
			location, latitude, longitude, area_m2,
			annual_energy_kwh, annual_savings_usd, carbon_offset_tons, data_source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.db.Exec(ctx, query,
		summary.Location,
		summary.Latitude,
		summary.Longitude,
		summary.AreaM2,
		summary.AnnualEnergyKWh,
		summary.AnnualSavingsUSD,
		summary.CarbonOffsetTons,
		summary.Source,
	)
	if err != nil {
		return fmt.Errorf("failed to insert estimate summary: %w", err)
	}

	r.log.DebugContext(ctx, "Estimate summary persisted",
		"location", summary.Location, "annual_kwh", summary.AnnualEnergyKWh)

	return nil
}

// RecentEstimates retrieves the most recently persisted estimate
// summaries, newest first, limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of summaries to retrieve.
//
// Returns:
// - A slice of models.EstimateSummary ordered by creation date descending.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) RecentEstimates(ctx context.Context, limit int) ([]models.EstimateSummary, error) {
	var summaries []models.EstimateSummary
	query := `
		SELECT id, location, latitude, longitude, area_m2,
			annual_energy_kwh, annual_savings_usd, carbon_offset_tons, data_source, created_at
		FROM estimates
		ORDER BY created_at DESC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent estimates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.EstimateSummary
		if errScan := rows.Scan(
			&s.ID, &s.Location, &s.Latitude, &s.Longitude, &s.AreaM2,
			&s.AnnualEnergyKWh, &s.AnnualSavingsUSD, &s.CarbonOffsetTons, &s.Source, &s.CreatedAt,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan estimate summary: %w", errScan)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return summaries, nil
}
