package services

import (
	"math/rand/v2"
	"regexp"
	"testing"
	"truck-loading-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func testCityTable(t *testing.T) *domain.CityTable {
	t.Helper()

	table, err := domain.NewCityTable("Hanoi", []domain.City{
		{Name: "Hanoi", Coordinates: domain.Coordinates{X: 21.0285, Y: 105.8542}},
		{Name: "Da Nang", Coordinates: domain.Coordinates{X: 16.0471, Y: 108.2068}, Distance: 767},
		{Name: "HCMC", Coordinates: domain.Coordinates{X: 10.8231, Y: 106.6297}, Distance: 1750},
		{Name: "Hai Phong", Coordinates: domain.Coordinates{X: 20.8449, Y: 106.6881}, Distance: 120},
	})
	require.NoError(t, err)
	return table
}

func TestRandomCodeGenerator(t *testing.T) {
	a := NewRandomCodeGenerator(rand.New(rand.NewPCG(1, 1)))
	b := NewRandomCodeGenerator(rand.New(rand.NewPCG(1, 1)))

	for range 20 {
		code := a.NewCode()
		assert.Regexp(t, codePattern, code)
		assert.Equal(t, code, b.NewCode(), "same seed, same codes")
	}
}

func TestSampleBatch(t *testing.T) {
	table := testCityTable(t)
	r := rand.New(rand.NewPCG(9, 9))

	pkgs, err := SampleBatch(r, table, NewRandomCodeGenerator(r), 40)
	require.NoError(t, err)
	require.Len(t, pkgs, 40)

	seen := map[string]bool{}
	for _, p := range pkgs {
		assert.False(t, seen[p.Code], "duplicate code %s", p.Code)
		seen[p.Code] = true

		assert.NotEqual(t, "Hanoi", p.Location)
		city, err := table.Lookup(p.Location)
		require.NoError(t, err)
		assert.Equal(t, city.Distance, p.Distance)
		assert.GreaterOrEqual(t, p.Weight, domain.MinPackageWeight)
		assert.LessOrEqual(t, p.Weight, domain.MaxPackageWeight)
		assert.Equal(t, domain.InitialPaymentStatus(p.ShippingType), p.PaymentStatus)
	}
}

func TestSampleBatchRejectsNegativeCount(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))

	pkgs, err := SampleBatch(r, testCityTable(t), NewRandomCodeGenerator(r), -1)
	assert.Error(t, err)
	assert.Nil(t, pkgs)

	pkgs, err = SampleBatch(r, testCityTable(t), NewRandomCodeGenerator(r), 0)
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}
