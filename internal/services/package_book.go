package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/metrics"
	"truck-loading-service/internal/platform/obs"
	"truck-loading-service/internal/ports"

	"github.com/rs/zerolog/log"
)

const maxCodeAttempts = 10

type AddPackageRequest struct {
	Location     string
	Weight       int
	ShippingType string
}

// PackageBook coordinates the package batch with allocation, routing and invoicing.
//
// It owns no allocation state: every read re-runs the Allocator over the
// current repository contents, so insertions and cancellations are always
// reflected in the next result.
type PackageBook struct {
	Repo        ports.PackageRepository
	Distances   ports.DepotDistanceProvider
	Codes       ports.CodeGenerator
	Coordinates ports.CoordinateSource
	Allocator   Allocator
	Depot       string
}

func (b *PackageBook) List(ctx context.Context) ([]*domain.Package, error) {
	pkgs, err := b.Repo.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("package book: list packages: %w", err)
	}
	return pkgs, nil
}

// Add validates the request, assigns a fresh code and stores the package.
func (b *PackageBook) Add(ctx context.Context, req AddPackageRequest) (_ *domain.Package, err error) {
	defer obs.Time(ctx, "book.Add")(&err)

	location := strings.TrimSpace(req.Location)
	if location == "" || location == b.Depot {
		return nil, &domain.InvalidPackageError{Field: "location", Reason: fmt.Sprintf("%q is not a destination", req.Location)}
	}

	shipping, err := domain.ParseShippingType(strings.TrimSpace(req.ShippingType))
	if err != nil {
		return nil, &domain.InvalidPackageError{Field: "shipping_type", Reason: err.Error()}
	}

	distance, err := b.Distances.DistanceFromDepot(ctx, location)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCity) {
			return nil, &domain.InvalidPackageError{Field: "location", Reason: fmt.Sprintf("%q is not a known destination", location)}
		}
		return nil, fmt.Errorf("package book: depot distance for %q: %w", location, err)
	}

	code, err := b.freshCode(ctx)
	if err != nil {
		return nil, err
	}

	pkg, err := domain.NewPackage(code, location, req.Weight, distance, shipping)
	if err != nil {
		return nil, err
	}
	if pkg.Weight > b.Allocator.Capacity {
		return nil, &domain.OverweightPackageError{Code: pkg.Code, Weight: pkg.Weight, Capacity: b.Allocator.Capacity}
	}

	if err := b.Repo.InsertPackage(ctx, pkg); err != nil {
		return nil, fmt.Errorf("package book: insert package %s: %w", pkg.Code, err)
	}

	log.Info().Str("req_id", obs.RequestID(ctx)).Str("code", pkg.Code).Str("location", pkg.Location).
		Int("weight", pkg.Weight).Msg("package added")
	return pkg, nil
}

func (b *PackageBook) freshCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := b.Codes.NewCode()
		_, err := b.Repo.GetPackage(ctx, code)
		if errors.Is(err, domain.ErrPackageNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("package book: check code %s: %w", code, err)
		}
	}
	return "", fmt.Errorf("package book: no unused code after %d attempts", maxCodeAttempts)
}

// Cancel removes a package from the batch.
func (b *PackageBook) Cancel(ctx context.Context, code string) (err error) {
	defer obs.Time(ctx, "book.Cancel")(&err)

	if err := b.Repo.DeletePackage(ctx, code); err != nil {
		return fmt.Errorf("package book: cancel %s: %w", code, err)
	}

	log.Info().Str("req_id", obs.RequestID(ctx)).Str("code", code).Msg("package canceled")
	return nil
}

// ConfirmPayment settles a package and reports whether its status changed.
func (b *PackageBook) ConfirmPayment(ctx context.Context, code string) (_ *domain.Package, changed bool, err error) {
	defer obs.Time(ctx, "book.ConfirmPayment")(&err)

	pkg, err := b.Repo.GetPackage(ctx, code)
	if err != nil {
		return nil, false, fmt.Errorf("package book: confirm payment %s: %w", code, err)
	}

	if !pkg.ConfirmPayment() {
		return pkg, false, nil
	}

	if err := b.Repo.UpdatePaymentStatus(ctx, code, pkg.PaymentStatus); err != nil {
		return nil, false, fmt.Errorf("package book: confirm payment %s: %w", code, err)
	}
	return pkg, true, nil
}

// Allocate re-reads the batch and partitions it into truck loads.
func (b *PackageBook) Allocate(ctx context.Context) (_ *domain.Allocation, err error) {
	defer obs.Time(ctx, "book.Allocate")(&err)

	pkgs, err := b.Repo.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("package book: list packages: %w", err)
	}

	alloc, err := b.Allocator.Allocate(pkgs)
	if err != nil {
		return nil, fmt.Errorf("package book: %w", err)
	}

	for _, w := range alloc.Warnings {
		log.Warn().Str("req_id", obs.RequestID(ctx)).Str("warning", w.String()).Msg("allocation warning")
	}
	metrics.TrucksAllocated.Set(float64(len(alloc.Loads)))
	metrics.PackagesAllocated.Set(float64(len(pkgs)))

	return alloc, nil
}

func (b *PackageBook) strategy(name string) (RouteStrategy, error) {
	return StrategyByName(name, b.Depot, b.Coordinates)
}

// Route plans the visiting order of one truck.
func (b *PackageBook) Route(ctx context.Context, truckNumber int, strategyName string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "book.Route")(&err)

	strategy, err := b.strategy(strategyName)
	if err != nil {
		return nil, err
	}

	alloc, err := b.Allocate(ctx)
	if err != nil {
		return nil, err
	}

	load, err := alloc.Truck(truckNumber)
	if err != nil {
		return nil, err
	}

	route, err := strategy.Plan(ctx, load)
	if err != nil {
		return nil, fmt.Errorf("package book: %w", err)
	}
	return route, nil
}

// Routes plans every truck of the current allocation.
func (b *PackageBook) Routes(ctx context.Context, strategyName string) ([]*domain.Route, error) {
	plan, err := b.PlanDeliveries(ctx, PlanDeliveriesRequest{Strategy: strategyName})
	if err != nil {
		return nil, err
	}
	return plan.Routes, nil
}

// Invoice prices one truck of the current allocation.
func (b *PackageBook) Invoice(ctx context.Context, truckNumber int) (_ *domain.Invoice, err error) {
	defer obs.Time(ctx, "book.Invoice")(&err)

	alloc, err := b.Allocate(ctx)
	if err != nil {
		return nil, err
	}

	load, err := alloc.Truck(truckNumber)
	if err != nil {
		return nil, err
	}

	return BuildInvoice(load)
}
