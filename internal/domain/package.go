package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinPackageWeight = 1
	MaxPackageWeight = 10
)

// Represents a single shippable unit handled by the system.
// Code, Location, Weight and Distance are fixed once the package is created;
// only PaymentStatus changes afterwards and it never affects loading or routing.
type Package struct {
	Code          string
	Location      string
	Weight        int
	Distance      float64
	ShippingType  ShippingType
	PaymentStatus PaymentStatus
}

// NewPackage validates the record and assigns the initial payment status
// implied by the shipping type.
func NewPackage(code, location string, weight int, distance float64, shipping ShippingType) (*Package, error) {
	code = strings.TrimSpace(code)
	location = strings.TrimSpace(location)

	var errs []error
	if code == "" {
		errs = append(errs, &InvalidPackageError{Field: "code", Reason: "must not be empty"})
	}
	if location == "" {
		errs = append(errs, &InvalidPackageError{Code: code, Field: "location", Reason: "must not be empty"})
	}
	if weight < MinPackageWeight || weight > MaxPackageWeight {
		errs = append(errs, &InvalidPackageError{
			Code:   code,
			Field:  "weight",
			Reason: fmt.Sprintf("%d is outside [%d, %d]", weight, MinPackageWeight, MaxPackageWeight),
		})
	}
	if distance <= 0 {
		errs = append(errs, &InvalidPackageError{Code: code, Field: "distance", Reason: "must be positive"})
	}
	if !shipping.Valid() {
		errs = append(errs, &InvalidPackageError{Code: code, Field: "shipping_type", Reason: "unknown shipping type"})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Package{
		Code:          code,
		Location:      location,
		Weight:        weight,
		Distance:      distance,
		ShippingType:  shipping,
		PaymentStatus: InitialPaymentStatus(shipping),
	}, nil
}

// ConfirmPayment moves the package to its settled payment status.
// COD packages settle as "Pay later (COD)", everything else as "Paid".
// It reports whether the status changed.
func (p *Package) ConfirmPayment() bool {
	next := PaymentPaid
	if p.ShippingType == ShippingCOD {
		next = PaymentPayLaterCOD
	}
	if p.PaymentStatus == next {
		return false
	}
	p.PaymentStatus = next
	return true
}

// Settled reports whether the package may appear on an invoice.
func (p *Package) Settled() bool {
	return p.PaymentStatus == PaymentPaid || p.PaymentStatus == PaymentPayLaterCOD
}
