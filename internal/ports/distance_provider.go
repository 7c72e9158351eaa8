package ports

import "context"

// Contract for resolving the depot distance of a destination city.
type DepotDistanceProvider interface {
	// Return the scalar distance from the depot to the city.
	DistanceFromDepot(ctx context.Context, city string) (float64, error)
}
