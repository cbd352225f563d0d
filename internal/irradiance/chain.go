package irradiance

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNoResolvers is returned when a chain is asked to resolve with no
// resolvers configured.
var ErrNoResolvers = errors.New("no irradiance resolvers configured")

// Chain tries resolvers in order and returns the first successful
// value together with the source tag of the resolver that produced it.
// Failures of earlier resolvers are logged and swallowed; with the
// catalog resolver as the terminal entry the chain never fails.
//
// The tag is decided once, from the winning resolver of the single
// resolution pass. The remote source is never probed a second time
// just to label the response.
type Chain struct {
	resolvers []Resolver
	log       *slog.Logger
}

// NewChain creates a resolver chain tried in argument order.
func NewChain(log *slog.Logger, resolvers ...Resolver) *Chain {
	return &Chain{resolvers: resolvers, log: log}
}

// Resolve walks the chain and returns the irradiance and the source tag
// of the first resolver that succeeds.
func (c *Chain) Resolve(ctx context.Context, lat, lng float64) (float64, string, error) {
	if len(c.resolvers) == 0 {
		return 0, "", ErrNoResolvers
	}

	var lastErr error
	for _, resolver := range c.resolvers {
		value, err := resolver.Resolve(ctx, lat, lng)
		if err == nil {
			return value, resolver.Source(), nil
		}
		lastErr = err
		c.log.WarnContext(ctx, "Irradiance resolver failed, trying next",
			"source", resolver.Source(), "error", err)
	}

	return 0, "", lastErr
}
