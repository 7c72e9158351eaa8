package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Static reference data for one city.
type City struct {
	Name        string
	Coordinates Coordinates
	Distance    float64
}

// CityTable is the read-only city reference table, keyed by the same
// names used in Package.Location. It is safe for concurrent reads.
type CityTable struct {
	Depot  string
	cities map[string]City
	order  []string
}

func NewCityTable(depot string, cities []City) (*CityTable, error) {
	depot = strings.TrimSpace(depot)
	if depot == "" {
		return nil, errors.New("city table: depot must be non-empty")
	}

	t := &CityTable{
		Depot:  depot,
		cities: make(map[string]City, len(cities)),
		order:  make([]string, 0, len(cities)),
	}
	for i, c := range cities {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("city table: entry %d has empty name", i+1)
		}
		if _, dup := t.cities[name]; dup {
			return nil, fmt.Errorf("city table: duplicate city %q", name)
		}
		if !c.Coordinates.Finite() {
			return nil, fmt.Errorf("city table: city %q has non-finite coordinates", name)
		}
		if name != depot && (c.Distance <= 0 || math.IsInf(c.Distance, 0) || math.IsNaN(c.Distance)) {
			return nil, fmt.Errorf("city table: city %q must have a positive, finite depot distance", name)
		}
		c.Name = name
		t.cities[name] = c
		t.order = append(t.order, name)
	}
	if _, ok := t.cities[depot]; !ok {
		return nil, fmt.Errorf("city table: depot %q has no entry", depot)
	}

	return t, nil
}

// Lookup fails with ErrUnknownCity rather than defaulting.
func (t *CityTable) Lookup(name string) (City, error) {
	c, ok := t.cities[name]
	if !ok {
		return City{}, fmt.Errorf("lookup %q: %w", name, ErrUnknownCity)
	}
	return c, nil
}

// Destinations lists every non-depot city in table order.
func (t *CityTable) Destinations() []string {
	out := make([]string, 0, len(t.order))
	for _, name := range t.order {
		if name != t.Depot {
			out = append(out, name)
		}
	}
	return out
}

func (t *CityTable) Coordinates() map[string]Coordinates {
	out := make(map[string]Coordinates, len(t.cities))
	for name, c := range t.cities {
		out[name] = c.Coordinates
	}
	return out
}
