package services

import (
	"context"
	"math"
	"truck-loading-service/internal/domain"
)

// GreedyByDepotDistance orders cities by their stored distance from the depot.
//
// Each step picks the unvisited city with the smallest scalar in cityDistances.
// Cities without an entry count as infinitely far and are visited last.
// Ties go to the city that appears first in cities. This is a sort by depot
// distance, not a pairwise tour: the scalars are never compared between cities.
// The depot and repeated names in cities are skipped.
func GreedyByDepotDistance(cityDistances map[string]float64, cities []string, depot string) []string {
	candidates := uniqueCities(cities, depot)

	route := make([]string, 0, len(candidates)+2)
	route = append(route, depot)

	visited := make([]bool, len(candidates))
	for range candidates {
		bestIdx := -1
		bestDist := math.Inf(1)
		for i, c := range candidates {
			if visited[i] {
				continue
			}
			d, ok := cityDistances[c]
			if !ok {
				d = math.Inf(1)
			}
			if bestIdx == -1 || d < bestDist {
				bestIdx = i
				bestDist = d
			}
		}

		visited[bestIdx] = true
		route = append(route, candidates[bestIdx])
	}

	return append(route, depot)
}

// DepotDistanceStrategy routes a truck with GreedyByDepotDistance using
// the distances recorded on its packages.
type DepotDistanceStrategy struct {
	Depot string
}

func (s DepotDistanceStrategy) Name() string { return StrategyDepotDistance }

func (s DepotDistanceStrategy) Plan(_ context.Context, load *domain.TruckLoad) (*domain.Route, error) {
	cities := load.Cities()
	route := &domain.Route{
		TruckNumber: load.Number,
		Strategy:    s.Name(),
		Depot:       s.Depot,
		Cities:      GreedyByDepotDistance(load.CityDistances(), cities, s.Depot),
	}
	if len(cities) == 0 {
		route.Warnings = append(route.Warnings, domain.EmptyInputWarning("truck has no destinations"))
	}
	return route, nil
}

// uniqueCities drops the depot and repeated names, keeping first appearance.
func uniqueCities(cities []string, depot string) []string {
	seen := make(map[string]struct{}, len(cities))
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if c == depot {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
