package services

import (
	"context"
	"errors"
	"fmt"
	"truck-loading-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentRoutes bounds the per-truck fan-out.
const maxConcurrentRoutes = 5

// PlanRoutes computes a route for every load with the given strategy.
//
// Trucks are planned concurrently; they share only read-only inputs.
// Routes are returned in load order. The first failure cancels the
// remaining work and is returned.
func PlanRoutes(
	ctx context.Context,
	loads []*domain.TruckLoad,
	strategy RouteStrategy,
) ([]*domain.Route, error) {
	if strategy == nil {
		return nil, errors.New("plan routes: strategy must be non-nil")
	}

	routes := make([]*domain.Route, len(loads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRoutes)

	for i, load := range loads {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := strategy.Plan(ctx, load)
			if err != nil {
				return fmt.Errorf("plan routes: %s route for truck %d: %w", strategy.Name(), load.Number, err)
			}
			routes[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return routes, nil
}
