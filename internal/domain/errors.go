package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrPackageNotFound = errors.New("package not found")
	ErrTruckNotFound   = errors.New("truck not found")
	ErrUnknownStrategy = errors.New("unknown route strategy")
	ErrUnknownCity     = errors.New("unknown city")
)

// OverweightPackageError reports a package that can never fit into any truck.
type OverweightPackageError struct {
	Code     string
	Weight   int
	Capacity int
}

func (e *OverweightPackageError) Error() string {
	return fmt.Sprintf("package %s weighs %d, over truck capacity %d", e.Code, e.Weight, e.Capacity)
}

// MissingCoordinateError lists every requested city absent from the coordinate table.
type MissingCoordinateError struct {
	Cities []string
}

func (e *MissingCoordinateError) Error() string {
	return "missing coordinates for: " + strings.Join(e.Cities, ", ")
}

type InvalidPackageError struct {
	Code   string
	Field  string
	Reason string
}

func (e *InvalidPackageError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("invalid package: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid package %s: %s %s", e.Code, e.Field, e.Reason)
}

// UnpaidPackagesError blocks invoicing while any package in the truck is unsettled.
type UnpaidPackagesError struct {
	TruckNumber int
	Codes       []string
}

func (e *UnpaidPackagesError) Error() string {
	return fmt.Sprintf("truck %d has unpaid packages: %s", e.TruckNumber, strings.Join(e.Codes, ", "))
}

type WarningKind string

const WarningEmptyInput WarningKind = "empty_input"

// Warning is a non-fatal condition reported next to a valid result.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return string(w.Kind) + ": " + w.Message }

func EmptyInputWarning(msg string) Warning {
	return Warning{Kind: WarningEmptyInput, Message: msg}
}
