package ports

import (
	"context"
	"truck-loading-service/internal/domain"
)

// Source of planar city coordinates.
// Missing cities are simply absent from the result; callers decide how to fail.
type CoordinateSource interface {
	GetMany(ctx context.Context, cities []string) (map[string]domain.Coordinates, error)
}
