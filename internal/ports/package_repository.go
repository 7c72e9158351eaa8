package ports

import (
	"context"
	"truck-loading-service/internal/domain"
)

// Port: a boundary for storing and retrieving Package entities.
type PackageRepository interface {
	// Retrieve all packages in insertion order.
	ListPackages(ctx context.Context) ([]*domain.Package, error)
	// Retrieve one package; wraps domain.ErrPackageNotFound when absent.
	GetPackage(ctx context.Context, code string) (*domain.Package, error)
	InsertPackage(ctx context.Context, pkg *domain.Package) error
	// Insert a batch atomically: either every package is stored or none is.
	InsertPackages(ctx context.Context, pkgs []*domain.Package) error
	// Remove a package; wraps domain.ErrPackageNotFound when absent.
	DeletePackage(ctx context.Context, code string) error
	UpdatePaymentStatus(ctx context.Context, code string, status domain.PaymentStatus) error
}
