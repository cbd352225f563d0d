package irradiance

import (
	"context"
	"log/slog"

	"github.com/seewa-ng/helios/internal/catalog"
)

// CatalogResolver resolves irradiance from the fixed Nigerian city
// table by nearest-neighbor lookup. It is the terminal resolver of the
// chain and never fails.
type CatalogResolver struct {
	log *slog.Logger
}

// NewCatalogResolver creates the local fallback resolver.
func NewCatalogResolver(log *slog.Logger) *CatalogResolver {
	return &CatalogResolver{log: log}
}

// Source reports the cached tag.
func (cr *CatalogResolver) Source() string { return SourceCached }

// Resolve returns the cached irradiance of the nearest catalog city, or
// the Nigeria-wide average if the table were empty. The error is always
// nil; the signature exists to satisfy the Resolver interface.
func (cr *CatalogResolver) Resolve(ctx context.Context, lat, lng float64) (float64, error) {
	city, ok := catalog.Nearest(lat, lng)
	if !ok {
		cr.log.WarnContext(ctx, "City catalog is empty, using Nigeria average irradiance",
			"irradiance", catalog.FallbackIrradiance)
		return catalog.FallbackIrradiance, nil
	}

	cr.log.DebugContext(ctx, "Using cached irradiance from nearest city",
		"city", city.Name, "irradiance", city.Irradiance, "lat", lat, "lng", lng)

	return city.Irradiance, nil
}
