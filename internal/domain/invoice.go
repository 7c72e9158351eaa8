package domain

const (
	costPerWeightDistance = 0.05
	baseHandlingCost      = 100.0
)

// ShippingCost prices one package: weight * distance * 0.05 + 100.
func ShippingCost(p *Package) float64 {
	return float64(p.Weight)*p.Distance*costPerWeightDistance + baseHandlingCost
}

type InvoiceLine struct {
	Code     string
	Location string
	Cost     float64
}

// Invoice for every package carried by one truck.
type Invoice struct {
	TruckNumber int
	Lines       []InvoiceLine
	Total       float64
}
