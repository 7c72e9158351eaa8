package distance

import (
	"context"
	"fmt"
	"truck-loading-service/internal/domain"
)

// TableDistanceProvider resolves depot distances from the static city table.
type TableDistanceProvider struct {
	table *domain.CityTable
}

func NewTableDistanceProvider(table *domain.CityTable) *TableDistanceProvider {
	return &TableDistanceProvider{table: table}
}

func (p *TableDistanceProvider) DistanceFromDepot(_ context.Context, city string) (float64, error) {
	if city == p.table.Depot {
		return 0, nil
	}

	c, err := p.table.Lookup(city)
	if err != nil {
		return 0, fmt.Errorf("depot distance: %w", err)
	}
	return c.Distance, nil
}

// TableCoordinateSource serves coordinates from the static city table.
// Cities missing from the table are absent from the result.
type TableCoordinateSource struct {
	table *domain.CityTable
}

func NewTableCoordinateSource(table *domain.CityTable) *TableCoordinateSource {
	return &TableCoordinateSource{table: table}
}

func (s *TableCoordinateSource) GetMany(_ context.Context, cities []string) (map[string]domain.Coordinates, error) {
	out := make(map[string]domain.Coordinates, len(cities))
	for _, name := range cities {
		if c, err := s.table.Lookup(name); err == nil {
			out[name] = c.Coordinates
		}
	}
	return out, nil
}
