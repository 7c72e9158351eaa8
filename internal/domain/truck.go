package domain

import "fmt"

// One capacity-bounded group of packages assigned to travel together.
// Packages are read-only views into the allocated batch.
type TruckLoad struct {
	Number   int
	Capacity int
	Packages []*Package
}

func NewTruckLoad(capacity int) *TruckLoad {
	return &TruckLoad{Capacity: capacity}
}

// Load a single package onto the truck.
func (t *TruckLoad) Load(pkg *Package) error {
	if t.TotalWeight()+pkg.Weight > t.Capacity {
		return fmt.Errorf(
			"load truck: package %s (weight=%d) exceeds remaining capacity of truck %d (used=%d capacity=%d)",
			pkg.Code, pkg.Weight, t.Number, t.TotalWeight(), t.Capacity,
		)
	}
	t.Packages = append(t.Packages, pkg)
	return nil
}

// Load multiple packages onto the truck.
func (t *TruckLoad) LoadMultiple(pkgs []*Package) error {
	for _, pkg := range pkgs {
		if err := t.Load(pkg); err != nil {
			return err
		}
	}

	return nil
}

func (t *TruckLoad) TotalWeight() int {
	total := 0
	for _, p := range t.Packages {
		total += p.Weight
	}
	return total
}

// MaxDistance is the depot distance of the furthest destination on the truck.
func (t *TruckLoad) MaxDistance() float64 {
	maxDist := 0.0
	for _, p := range t.Packages {
		if p.Distance > maxDist {
			maxDist = p.Distance
		}
	}
	return maxDist
}

// Cities returns the unique destinations in first-appearance order.
func (t *TruckLoad) Cities() []string {
	seen := make(map[string]struct{}, len(t.Packages))
	out := make([]string, 0, len(t.Packages))
	for _, p := range t.Packages {
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		out = append(out, p.Location)
	}
	return out
}

// CityDistances maps each destination to its depot distance.
// When several packages share a city the last one wins.
func (t *TruckLoad) CityDistances() map[string]float64 {
	out := make(map[string]float64, len(t.Packages))
	for _, p := range t.Packages {
		out[p.Location] = p.Distance
	}
	return out
}

// Result of one allocation pass over a package batch.
type Allocation struct {
	Capacity int
	Loads    []*TruckLoad
	Warnings []Warning
}

// Truck returns the load with the given 1-based number.
func (a *Allocation) Truck(number int) (*TruckLoad, error) {
	if number < 1 || number > len(a.Loads) {
		return nil, fmt.Errorf("truck %d: %w", number, ErrTruckNotFound)
	}
	return a.Loads[number-1], nil
}
