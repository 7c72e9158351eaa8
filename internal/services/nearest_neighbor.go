package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/ports"
)

// Plan a visiting order using a greedy nearest-neighbor algorithm over
// planar Euclidean distance.
//
// The algorithm minimizes the immediate leg at each step.
// It does not attempt global route optimization (e.g., TSP solvers).
// The route starts and ends at the depot. Every requested city, depot
// included, must have coordinates; otherwise a MissingCoordinateError
// naming all missing cities is returned.
func NearestNeighborRoute(
	coords map[string]domain.Coordinates,
	cities []string,
	depot string,
) ([]string, error) {
	if depot == "" {
		return nil, errors.New("nearest neighbor route: depot must be non-empty")
	}

	remaining := uniqueCities(cities, depot)

	var missing []string
	for _, c := range append([]string{depot}, remaining...) {
		if _, ok := coords[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingCoordinateError{Cities: missing}
	}

	// Sorted candidates make equidistant ties resolve to the smallest name.
	slices.Sort(remaining)

	route := make([]string, 0, len(remaining)+2)
	route = append(route, depot)
	current := depot

	for len(remaining) > 0 {
		bestIdx := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum straight-line distance (greedy step).
		for i, c := range remaining {
			d := coords[current].DistanceTo(coords[c])
			if bestIdx == -1 || d < minDistance {
				minDistance = d
				bestIdx = i
			}
		}

		current = remaining[bestIdx]
		route = append(route, current)
		remaining = slices.Delete(remaining, bestIdx, bestIdx+1)
	}

	return append(route, depot), nil
}

// CoordinateStrategy is the backup route: nearest neighbor over the
// coordinate table instead of the distances recorded on packages.
type CoordinateStrategy struct {
	Depot  string
	Source ports.CoordinateSource
}

func (s CoordinateStrategy) Name() string { return StrategyCoordinate }

func (s CoordinateStrategy) Plan(ctx context.Context, load *domain.TruckLoad) (*domain.Route, error) {
	if s.Source == nil {
		return nil, errors.New("plan coordinate route: coordinate source is nil")
	}

	cities := load.Cities()
	coords, err := s.Source.GetMany(ctx, append([]string{s.Depot}, cities...))
	if err != nil {
		return nil, fmt.Errorf("plan coordinate route: truck %d: load coordinates: %w", load.Number, err)
	}

	order, err := NearestNeighborRoute(coords, cities, s.Depot)
	if err != nil {
		return nil, fmt.Errorf("plan coordinate route: truck %d: %w", load.Number, err)
	}

	route := &domain.Route{
		TruckNumber: load.Number,
		Strategy:    s.Name(),
		Depot:       s.Depot,
		Cities:      order,
	}
	if len(cities) == 0 {
		route.Warnings = append(route.Warnings, domain.EmptyInputWarning("truck has no destinations"))
	}
	return route, nil
}
