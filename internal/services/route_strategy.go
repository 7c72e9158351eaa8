package services

import (
	"context"
	"fmt"
	"strings"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/ports"
)

const (
	StrategyDepotDistance = "depot-distance"
	StrategyCoordinate    = "coordinate"
)

// RouteStrategy orders the destinations of one truck load.
// Implementations are pure with respect to the load and safe for concurrent use.
type RouteStrategy interface {
	Name() string
	Plan(ctx context.Context, load *domain.TruckLoad) (*domain.Route, error)
}

// StrategyByName resolves a strategy name, accepting the legacy
// aliases "tsp" and "backup". An empty name selects depot-distance.
func StrategyByName(name, depot string, source ports.CoordinateSource) (RouteStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyDepotDistance, "tsp":
		return DepotDistanceStrategy{Depot: depot}, nil
	case StrategyCoordinate, "backup":
		return CoordinateStrategy{Depot: depot, Source: source}, nil
	default:
		return nil, fmt.Errorf("strategy %q: %w", name, domain.ErrUnknownStrategy)
	}
}
