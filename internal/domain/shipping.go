package domain

import "fmt"

// How the customer pays for a shipment.
type ShippingType int

const (
	ShippingCOD ShippingType = iota + 1
	ShippingBankTransfer
	ShippingCreditCard
)

var shippingNames = map[ShippingType]string{
	ShippingCOD:          "COD",
	ShippingBankTransfer: "Bank Transfer",
	ShippingCreditCard:   "Credit Card",
}

func (s ShippingType) Valid() bool {
	_, ok := shippingNames[s]
	return ok
}

func (s ShippingType) String() string {
	if name, ok := shippingNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ShippingType(%d)", int(s))
}

// ParseShippingType accepts the display names used by the API and seed files.
func ParseShippingType(s string) (ShippingType, error) {
	for t, name := range shippingNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("parse shipping type: unknown value %q", s)
}

// Settlement state of a package.
type PaymentStatus int

const (
	PaymentUnpaid PaymentStatus = iota + 1
	PaymentPaid
	PaymentPayLaterCOD
)

var paymentNames = map[PaymentStatus]string{
	PaymentUnpaid:      "Unpaid",
	PaymentPaid:        "Paid",
	PaymentPayLaterCOD: "Pay later (COD)",
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentNames[s]
	return ok
}

func (s PaymentStatus) String() string {
	if name, ok := paymentNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PaymentStatus(%d)", int(s))
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for p, name := range paymentNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("parse payment status: unknown value %q", s)
}

// InitialPaymentStatus is the status a freshly created package starts with.
func InitialPaymentStatus(s ShippingType) PaymentStatus {
	if s == ShippingCOD {
		return PaymentPayLaterCOD
	}
	return PaymentUnpaid
}
