package services

import (
	"context"
	"fmt"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/obs"
)

type PlanDeliveriesRequest struct {
	Strategy string
	// TruckCapacity overrides the book's allocator capacity when non-zero.
	TruckCapacity int
}

// DeliveryPlan is one allocation together with a route for each of its trucks.
type DeliveryPlan struct {
	Allocation *domain.Allocation
	Routes     []*domain.Route
}

// PlanDeliveries allocates the current batch and routes every truck.
//
// The capacity override only affects this call; the stored batch and the
// book's default allocator are left untouched.
func (b *PackageBook) PlanDeliveries(ctx context.Context, req PlanDeliveriesRequest) (_ *DeliveryPlan, err error) {
	defer obs.Time(ctx, "book.PlanDeliveries")(&err)

	strategy, err := b.strategy(req.Strategy)
	if err != nil {
		return nil, err
	}

	allocator := b.Allocator
	if req.TruckCapacity != 0 {
		allocator = NewAllocator(req.TruckCapacity)
	}

	pkgs, err := b.Repo.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: list packages: %w", err)
	}

	alloc, err := allocator.Allocate(pkgs)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	routes, err := PlanRoutes(ctx, alloc.Loads, strategy)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	return &DeliveryPlan{Allocation: alloc, Routes: routes}, nil
}
