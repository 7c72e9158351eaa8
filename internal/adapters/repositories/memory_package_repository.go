package repositories

import (
	"context"
	"fmt"
	"sync"
	"truck-loading-service/internal/domain"
)

// In-memory implementation of the PackageRepository port.
// Packages are copied on the way in and out so callers never share state
// with the store. Safe for concurrent use.
type MemoryPackageRepository struct {
	mu       sync.RWMutex
	packages []domain.Package
}

func NewMemoryPackageRepository(seed ...*domain.Package) *MemoryPackageRepository {
	r := &MemoryPackageRepository{}
	for _, p := range seed {
		r.packages = append(r.packages, *p)
	}
	return r
}

func (r *MemoryPackageRepository) ListPackages(_ context.Context) ([]*domain.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Package, 0, len(r.packages))
	for i := range r.packages {
		p := r.packages[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *MemoryPackageRepository) GetPackage(_ context.Context, code string) (*domain.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(code)
	if i < 0 {
		return nil, fmt.Errorf("get package %s: %w", code, domain.ErrPackageNotFound)
	}
	p := r.packages[i]
	return &p, nil
}

func (r *MemoryPackageRepository) InsertPackage(_ context.Context, pkg *domain.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(pkg.Code) >= 0 {
		return fmt.Errorf("insert package %s: code already exists", pkg.Code)
	}
	r.packages = append(r.packages, *pkg)
	return nil
}

func (r *MemoryPackageRepository) InsertPackages(_ context.Context, pkgs []*domain.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(pkgs))
	for _, p := range pkgs {
		if _, dup := seen[p.Code]; dup || r.indexOf(p.Code) >= 0 {
			return fmt.Errorf("insert packages: code %s already exists", p.Code)
		}
		seen[p.Code] = struct{}{}
	}
	for _, p := range pkgs {
		r.packages = append(r.packages, *p)
	}
	return nil
}

func (r *MemoryPackageRepository) DeletePackage(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(code)
	if i < 0 {
		return fmt.Errorf("delete package %s: %w", code, domain.ErrPackageNotFound)
	}
	r.packages = append(r.packages[:i], r.packages[i+1:]...)
	return nil
}

func (r *MemoryPackageRepository) UpdatePaymentStatus(_ context.Context, code string, status domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(code)
	if i < 0 {
		return fmt.Errorf("update payment status %s: %w", code, domain.ErrPackageNotFound)
	}
	r.packages[i].PaymentStatus = status
	return nil
}

func (r *MemoryPackageRepository) indexOf(code string) int {
	for i := range r.packages {
		if r.packages[i].Code == code {
			return i
		}
	}
	return -1
}
