package services

import (
	"errors"
	"fmt"
	"slices"
	"truck-loading-service/internal/domain"
)

// DefaultCapacity is the reference truck capacity in weight units.
const DefaultCapacity = 25

// Allocator partitions a package batch into truck loads by repeatedly
// solving a 0/1 knapsack over the packages that are still unassigned.
//
// Each pass fills one truck with the heaviest subset that fits. This is a
// deterministic bin-packing heuristic, not a globally optimal packing.
// The Allocator holds no state between calls and is safe for concurrent use.
type Allocator struct {
	Capacity int
}

func NewAllocator(capacity int) Allocator {
	return Allocator{Capacity: capacity}
}

// Allocate returns the full partition of pkgs into truck loads.
//
// Loads are ordered by their furthest destination, descending, and numbered
// from 1. Within a load, packages are ordered by distance, descending.
// When two subsets reach the same packed weight the later-indexed packages
// win, because backtracking scans from the last package to the first.
func (a Allocator) Allocate(pkgs []*domain.Package) (*domain.Allocation, error) {
	if a.Capacity <= 0 {
		return nil, fmt.Errorf("allocate: capacity=%d: %w", a.Capacity, domain.ErrInvalidCapacity)
	}

	var errs []error
	for _, p := range pkgs {
		if p.Weight < 1 {
			errs = append(errs, &domain.InvalidPackageError{
				Code: p.Code, Field: "weight", Reason: fmt.Sprintf("%d must be at least 1", p.Weight),
			})
			continue
		}
		if p.Weight > a.Capacity {
			errs = append(errs, &domain.OverweightPackageError{Code: p.Code, Weight: p.Weight, Capacity: a.Capacity})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("allocate: %w", err)
	}

	out := &domain.Allocation{Capacity: a.Capacity, Loads: []*domain.TruckLoad{}}
	if len(pkgs) == 0 {
		out.Warnings = append(out.Warnings, domain.EmptyInputWarning("no packages to allocate"))
		return out, nil
	}

	remaining := slices.Clone(pkgs)
	for len(remaining) > 0 {
		selected, rest := a.knapsack(remaining)

		// Furthest destination first; stable keeps backtracking order on ties.
		slices.SortStableFunc(selected, func(x, y *domain.Package) int {
			return compareDesc(x.Distance, y.Distance)
		})

		load := domain.NewTruckLoad(a.Capacity)
		if err := load.LoadMultiple(selected); err != nil {
			return nil, fmt.Errorf("allocate: %w", err)
		}
		out.Loads = append(out.Loads, load)
		remaining = rest
	}

	slices.SortStableFunc(out.Loads, func(x, y *domain.TruckLoad) int {
		return compareDesc(x.MaxDistance(), y.MaxDistance())
	})
	for i, load := range out.Loads {
		load.Number = i + 1
	}

	return out, nil
}

// knapsack selects the subset of pkgs with the largest total weight that
// does not exceed capacity. It returns the selection in backtracking order
// (last index first) and the unselected packages in their original order.
func (a Allocator) knapsack(pkgs []*domain.Package) (selected, rest []*domain.Package) {
	n := len(pkgs)
	capacity := a.Capacity

	best := make([][]int, n+1)
	for i := range best {
		best[i] = make([]int, capacity+1)
	}

	for i := 1; i <= n; i++ {
		wi := pkgs[i-1].Weight
		for w := 0; w <= capacity; w++ {
			best[i][w] = best[i-1][w]
			if wi <= w {
				best[i][w] = max(best[i][w], best[i-1][w-wi]+wi)
			}
		}
	}

	taken := make([]bool, n)
	w := capacity
	for i := n; i > 0; i-- {
		if best[i][w] != best[i-1][w] {
			taken[i-1] = true
			selected = append(selected, pkgs[i-1])
			w -= pkgs[i-1].Weight
		}
	}

	rest = make([]*domain.Package, 0, n-len(selected))
	for i, p := range pkgs {
		if !taken[i] {
			rest = append(rest, p)
		}
	}

	return selected, rest
}

func compareDesc(a, b float64) int {
	if a > b {
		return -1
	}
	if a < b {
		return 1
	}
	return 0
}
