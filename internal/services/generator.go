package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/ports"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// RandomCodeGenerator produces 6-character uppercase alphanumeric codes.
// It is safe for concurrent use.
type RandomCodeGenerator struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRandomCodeGenerator(r *rand.Rand) *RandomCodeGenerator {
	return &RandomCodeGenerator{r: r}
}

func (g *RandomCodeGenerator) NewCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[g.r.IntN(len(codeAlphabet))]
	}
	return string(b)
}

var shippingTypes = []domain.ShippingType{
	domain.ShippingCOD,
	domain.ShippingBankTransfer,
	domain.ShippingCreditCard,
}

// SampleBatch generates n demo packages spread over the table's destinations.
// Codes are unique within the batch.
func SampleBatch(r *rand.Rand, table *domain.CityTable, codes ports.CodeGenerator, n int) ([]*domain.Package, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample batch: count %d must not be negative", n)
	}

	destinations := table.Destinations()
	if len(destinations) == 0 {
		return nil, errors.New("sample batch: city table has no destinations")
	}

	used := make(map[string]struct{}, n)
	out := make([]*domain.Package, 0, n)
	for len(out) < n {
		code := codes.NewCode()
		if _, dup := used[code]; dup {
			continue
		}
		used[code] = struct{}{}

		city, err := table.Lookup(destinations[r.IntN(len(destinations))])
		if err != nil {
			return nil, fmt.Errorf("sample batch: %w", err)
		}

		weight := domain.MinPackageWeight + r.IntN(domain.MaxPackageWeight-domain.MinPackageWeight+1)
		shipping := shippingTypes[r.IntN(len(shippingTypes))]

		pkg, err := domain.NewPackage(code, city.Name, weight, city.Distance, shipping)
		if err != nil {
			return nil, fmt.Errorf("sample batch: %w", err)
		}
		out = append(out, pkg)
	}

	return out, nil
}
