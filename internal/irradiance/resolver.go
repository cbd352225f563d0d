// Package irradiance resolves the average daily solar irradiance for a
// pair of coordinates. Resolvers are tried in an ordered chain: a
// remote, time-bounded primary and a deterministic local fallback.
package irradiance

import "context"

// Source tags identifying which resolver produced a value.
const (
	SourceRemote = "remote"
	SourceCached = "cached"
)

// Resolver resolves the average daily irradiance (kWh/m²/day) at the
// given coordinates. Implementations must be safe for concurrent use
// and side-effect free apart from logging and metrics.
type Resolver interface {
	Resolve(ctx context.Context, lat, lng float64) (float64, error)
	// Source returns the tag reported when this resolver wins.
	Source() string
}
