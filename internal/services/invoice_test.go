package services

import (
	"errors"
	"testing"
	"truck-loading-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoice(t *testing.T) {
	load := &domain.TruckLoad{Number: 2, Capacity: 25, Packages: []*domain.Package{
		{Code: "A", Location: "HCMC", Weight: 4, Distance: 1750, PaymentStatus: domain.PaymentPaid},
		{Code: "B", Location: "Hai Phong", Weight: 10, Distance: 120, PaymentStatus: domain.PaymentPayLaterCOD},
	}}

	inv, err := BuildInvoice(load)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.TruckNumber)
	require.Len(t, inv.Lines, 2)
	assert.InDelta(t, 450.0, inv.Lines[0].Cost, 1e-9)
	assert.InDelta(t, 160.0, inv.Lines[1].Cost, 1e-9)
	assert.InDelta(t, 610.0, inv.Total, 1e-9)
}

func TestBuildInvoiceRejectsUnpaid(t *testing.T) {
	load := &domain.TruckLoad{Number: 1, Packages: []*domain.Package{
		{Code: "A", PaymentStatus: domain.PaymentUnpaid},
		{Code: "B", PaymentStatus: domain.PaymentPaid},
		{Code: "C", PaymentStatus: domain.PaymentUnpaid},
	}}

	_, err := BuildInvoice(load)

	var unpaid *domain.UnpaidPackagesError
	require.True(t, errors.As(err, &unpaid))
	assert.Equal(t, []string{"A", "C"}, unpaid.Codes)
}
