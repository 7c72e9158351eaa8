package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruckLoadLoad(t *testing.T) {
	// build test data
	pkg1 := &Package{Code: "P1", Location: "A", Weight: 10, Distance: 700}
	pkg2 := &Package{Code: "P2", Location: "B", Weight: 10, Distance: 100}
	pkg3 := &Package{Code: "P3", Location: "A", Weight: 10, Distance: 1500}

	truck := NewTruckLoad(25)
	truck.Number = 1

	require.NoError(t, truck.LoadMultiple([]*Package{pkg1, pkg2}))

	err := truck.Load(pkg3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "P3")

	assert.Equal(t, 20, truck.TotalWeight())
	assert.Len(t, truck.Packages, 2)
}

func TestTruckLoadDerivedViews(t *testing.T) {
	truck := &TruckLoad{
		Number:   1,
		Capacity: 25,
		Packages: []*Package{
			{Code: "P1", Location: "Da Nang", Weight: 3, Distance: 767},
			{Code: "P2", Location: "HCMC", Weight: 4, Distance: 1750},
			{Code: "P3", Location: "Da Nang", Weight: 2, Distance: 800},
		},
	}

	assert.Equal(t, 1750.0, truck.MaxDistance())
	assert.Equal(t, []string{"Da Nang", "HCMC"}, truck.Cities())
	assert.Equal(t, map[string]float64{"Da Nang": 800, "HCMC": 1750}, truck.CityDistances())
}

func TestAllocationTruck(t *testing.T) {
	a := &Allocation{Capacity: 25, Loads: []*TruckLoad{{Number: 1}, {Number: 2}}}

	got, err := a.Truck(2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Number)

	for _, n := range []int{0, 3, -1} {
		_, err := a.Truck(n)
		assert.True(t, errors.Is(err, ErrTruckNotFound), "truck %d", n)
	}
}

func TestRouteStops(t *testing.T) {
	r := &Route{Depot: "Hanoi", Cities: []string{"Hanoi", "B", "A", "Hanoi"}}
	assert.Equal(t, []string{"B", "A"}, r.Stops())

	empty := &Route{Depot: "Hanoi", Cities: []string{"Hanoi", "Hanoi"}}
	assert.Empty(t, empty.Stops())
}

func TestCoordinatesDistanceTo(t *testing.T) {
	a := Coordinates{X: 0, Y: 0}
	b := Coordinates{X: 3, Y: 4}

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
	assert.Equal(t, 0.0, a.DistanceTo(a))
}

func TestCoordinatesDistanceToDoesNotOverflow(t *testing.T) {
	a := Coordinates{X: 0, Y: 0}
	b := Coordinates{X: 3e200, Y: 4e200}

	assert.InDelta(t, 5e200, a.DistanceTo(b), 1e188)
}
