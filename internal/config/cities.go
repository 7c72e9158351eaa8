package config

import (
	"fmt"
	"os"
	"truck-loading-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type cityFile struct {
	Depot    string      `yaml:"depot"`
	Capacity int         `yaml:"capacity"`
	Cities   []cityEntry `yaml:"cities"`
}

type cityEntry struct {
	Name     string  `yaml:"name"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Distance float64 `yaml:"distance"`
}

// LoadCityTable reads the city reference table from a YAML file.
// The returned capacity is 0 when the file does not set one.
func LoadCityTable(path string) (*domain.CityTable, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("load city table: read %q: %w", path, err)
	}
	return ParseCityTable(raw)
}

func ParseCityTable(raw []byte) (*domain.CityTable, int, error) {
	var f cityFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, 0, fmt.Errorf("load city table: parse yaml: %w", err)
	}
	if f.Capacity < 0 {
		return nil, 0, fmt.Errorf("load city table: capacity %d: %w", f.Capacity, domain.ErrInvalidCapacity)
	}

	cities := make([]domain.City, 0, len(f.Cities))
	for _, c := range f.Cities {
		cities = append(cities, domain.City{
			Name:        c.Name,
			Coordinates: domain.Coordinates{X: c.X, Y: c.Y},
			Distance:    c.Distance,
		})
	}

	table, err := domain.NewCityTable(f.Depot, cities)
	if err != nil {
		return nil, 0, fmt.Errorf("load city table: %w", err)
	}
	return table, f.Capacity, nil
}

// DefaultCityTable is the built-in Vietnam network with Hanoi as depot.
func DefaultCityTable() *domain.CityTable {
	table, err := domain.NewCityTable("Hanoi", []domain.City{
		{Name: "Hanoi", Coordinates: domain.Coordinates{X: 21.0285, Y: 105.8542}},
		{Name: "Da Nang", Coordinates: domain.Coordinates{X: 16.0471, Y: 108.2068}, Distance: 767},
		{Name: "HCMC", Coordinates: domain.Coordinates{X: 10.8231, Y: 106.6297}, Distance: 1750},
		{Name: "Nha Trang", Coordinates: domain.Coordinates{X: 12.2388, Y: 109.1967}, Distance: 1300},
		{Name: "Dalat", Coordinates: domain.Coordinates{X: 11.9404, Y: 108.4583}, Distance: 1480},
		{Name: "Hai Phong", Coordinates: domain.Coordinates{X: 20.8449, Y: 106.6881}, Distance: 120},
	})
	if err != nil {
		panic(err)
	}
	return table
}
