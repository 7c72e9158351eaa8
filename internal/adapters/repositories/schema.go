package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/db"
	"truck-loading-service/internal/ports"
)

// Initialize the database schema for the given dialect.
func InitSchema(ctx context.Context, conn *sql.DB, dialect db.Dialect) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	seqColumn := "seq INTEGER PRIMARY KEY AUTOINCREMENT"
	if dialect == db.Postgres {
		seqColumn = "seq BIGSERIAL PRIMARY KEY"
	}

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		` + seqColumn + `,
		code TEXT NOT NULL UNIQUE,
		location TEXT NOT NULL,
		weight INTEGER NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		shipping_type TEXT NOT NULL,
		payment_status TEXT NOT NULL
	);
	`

	createCoordinatesQuery := `
	CREATE TABLE IF NOT EXISTS city_coordinates (
		city TEXT PRIMARY KEY,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_packages_location
	ON packages(location);
	`

	statements := []string{
		createPackagesQuery,
		createCoordinatesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PackageSeed struct {
	Code          string  `json:"code"`
	Location      string  `json:"location"`
	Weight        int     `json:"weight"`
	Distance      float64 `json:"distance"`
	ShippingType  string  `json:"shipping_type"`
	PaymentStatus string  `json:"payment_status,omitempty"`
}

// Populate the repository with package data from a JSON file.
// Packages whose code already exists are left untouched.
// It returns the number of packages inserted.
func SeedFromJSON(ctx context.Context, repo ports.PackageRepository, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed packages: read %q: %w", jsonPath, err)
	}

	var data []PackageSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed packages: parse json: %w", err)
	}

	pkgs := make([]*domain.Package, 0, len(data))
	for i, item := range data {
		shipping, err := domain.ParseShippingType(strings.TrimSpace(item.ShippingType))
		if err != nil {
			return 0, fmt.Errorf("seed packages: item at index %d: %w", i+1, err)
		}

		pkg, err := domain.NewPackage(item.Code, item.Location, item.Weight, item.Distance, shipping)
		if err != nil {
			return 0, fmt.Errorf("seed packages: item at index %d: %w", i+1, err)
		}

		if s := strings.TrimSpace(item.PaymentStatus); s != "" {
			if pkg.PaymentStatus, err = domain.ParsePaymentStatus(s); err != nil {
				return 0, fmt.Errorf("seed packages: item at index %d: %w", i+1, err)
			}
		}
		pkgs = append(pkgs, pkg)
	}

	return SeedPackages(ctx, repo, pkgs)
}

// SeedPackages inserts every package whose code is not stored yet.
// The new packages are written in one batch, so a failure leaves the
// repository unchanged.
func SeedPackages(ctx context.Context, repo ports.PackageRepository, pkgs []*domain.Package) (int, error) {
	fresh := make([]*domain.Package, 0, len(pkgs))
	seen := make(map[string]struct{}, len(pkgs))
	for _, p := range pkgs {
		if _, dup := seen[p.Code]; dup {
			continue
		}
		seen[p.Code] = struct{}{}

		_, err := repo.GetPackage(ctx, p.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrPackageNotFound) {
			return 0, fmt.Errorf("seed packages: lookup %s: %w", p.Code, err)
		}
		fresh = append(fresh, p)
	}

	if len(fresh) == 0 {
		return 0, nil
	}
	if err := repo.InsertPackages(ctx, fresh); err != nil {
		return 0, fmt.Errorf("seed packages: %w", err)
	}
	return len(fresh), nil
}

// SeedFromJSONIfEmpty seeds only a repository that holds no packages yet,
// so packages cancelled after the first start stay cancelled.
func SeedFromJSONIfEmpty(ctx context.Context, repo ports.PackageRepository, jsonPath string) (int, error) {
	existing, err := repo.ListPackages(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed packages: list existing: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	return SeedFromJSON(ctx, repo, jsonPath)
}
