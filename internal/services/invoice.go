package services

import (
	"truck-loading-service/internal/domain"
)

// BuildInvoice prices every package on the truck.
// All packages must be settled ("Paid" or "Pay later (COD)"); otherwise an
// UnpaidPackagesError listing the offending codes is returned.
func BuildInvoice(load *domain.TruckLoad) (*domain.Invoice, error) {
	var unpaid []string
	for _, p := range load.Packages {
		if !p.Settled() {
			unpaid = append(unpaid, p.Code)
		}
	}
	if len(unpaid) > 0 {
		return nil, &domain.UnpaidPackagesError{TruckNumber: load.Number, Codes: unpaid}
	}

	inv := &domain.Invoice{
		TruckNumber: load.Number,
		Lines:       make([]domain.InvoiceLine, 0, len(load.Packages)),
	}
	for _, p := range load.Packages {
		cost := domain.ShippingCost(p)
		inv.Lines = append(inv.Lines, domain.InvoiceLine{Code: p.Code, Location: p.Location, Cost: cost})
		inv.Total += cost
	}

	return inv, nil
}
