package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/db"
	"truck-loading-service/internal/platform/obs"
)

// SQL-backed implementation of the PackageRepository port.
// Works against SQLite and Postgres; queries are written with '?' and
// rebound for the configured dialect.
type SQLPackageRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLPackageRepository(conn *sql.DB, dialect db.Dialect) *SQLPackageRepository {
	return &SQLPackageRepository{DB: conn, Dialect: dialect}
}

const packageColumns = `code, location, weight, distance, shipping_type, payment_status`

// Return all packages in insertion order.
func (s *SQLPackageRepository) ListPackages(ctx context.Context) (_ []*domain.Package, err error) {
	defer obs.Time(ctx, "packages.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql package repository: DB is nil")
	}

	query := `
	SELECT ` + packageColumns + `
	FROM packages
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list packages: query packages table: %w", err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0, 64)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("list packages: %w", err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list packages: row iteration: %w", err)
	}

	return packages, nil
}

func (s *SQLPackageRepository) GetPackage(ctx context.Context, code string) (*domain.Package, error) {
	if s.DB == nil {
		return nil, errors.New("sql package repository: DB is nil")
	}

	query := s.Dialect.Rebind(`
	SELECT ` + packageColumns + `
	FROM packages
	WHERE code = ?;
	`)
	pkg, err := scanPackage(s.DB.QueryRowContext(ctx, query, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get package %s: %w", code, domain.ErrPackageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", code, err)
	}
	return pkg, nil
}

const insertPackageQuery = `
	INSERT INTO packages (` + packageColumns + `)
	VALUES (?, ?, ?, ?, ?, ?);
	`

func insertArgs(pkg *domain.Package) []any {
	return []any{
		pkg.Code,
		pkg.Location,
		pkg.Weight,
		pkg.Distance,
		pkg.ShippingType.String(),
		pkg.PaymentStatus.String(),
	}
}

func (s *SQLPackageRepository) InsertPackage(ctx context.Context, pkg *domain.Package) error {
	if s.DB == nil {
		return errors.New("sql package repository: DB is nil")
	}

	if _, err := s.DB.ExecContext(ctx, s.Dialect.Rebind(insertPackageQuery), insertArgs(pkg)...); err != nil {
		return fmt.Errorf("insert package %s: %w", pkg.Code, err)
	}
	return nil
}

// InsertPackages stores the batch in one transaction.
func (s *SQLPackageRepository) InsertPackages(ctx context.Context, pkgs []*domain.Package) error {
	if s.DB == nil {
		return errors.New("sql package repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert packages: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.Dialect.Rebind(insertPackageQuery))
	if err != nil {
		return fmt.Errorf("insert packages: prepare: %w", err)
	}
	defer stmt.Close()

	for _, pkg := range pkgs {
		if _, err := stmt.ExecContext(ctx, insertArgs(pkg)...); err != nil {
			return fmt.Errorf("insert package %s: %w", pkg.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert packages: commit tx: %w", err)
	}
	return nil
}

func (s *SQLPackageRepository) DeletePackage(ctx context.Context, code string) error {
	if s.DB == nil {
		return errors.New("sql package repository: DB is nil")
	}

	res, err := s.DB.ExecContext(ctx, s.Dialect.Rebind(`DELETE FROM packages WHERE code = ?;`), code)
	if err != nil {
		return fmt.Errorf("delete package %s: %w", code, err)
	}
	return requireOneRow(res, code)
}

func (s *SQLPackageRepository) UpdatePaymentStatus(ctx context.Context, code string, status domain.PaymentStatus) error {
	if s.DB == nil {
		return errors.New("sql package repository: DB is nil")
	}

	query := s.Dialect.Rebind(`UPDATE packages SET payment_status = ? WHERE code = ?;`)
	res, err := s.DB.ExecContext(ctx, query, status.String(), code)
	if err != nil {
		return fmt.Errorf("update payment status %s: %w", code, err)
	}
	return requireOneRow(res, code)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (*domain.Package, error) {
	var (
		pkg              domain.Package
		shipping, status string
	)
	if err := row.Scan(&pkg.Code, &pkg.Location, &pkg.Weight, &pkg.Distance, &shipping, &status); err != nil {
		return nil, err
	}

	var err error
	if pkg.ShippingType, err = domain.ParseShippingType(shipping); err != nil {
		return nil, fmt.Errorf("scan package %s: %w", pkg.Code, err)
	}
	if pkg.PaymentStatus, err = domain.ParsePaymentStatus(status); err != nil {
		return nil, fmt.Errorf("scan package %s: %w", pkg.Code, err)
	}
	return &pkg, nil
}

func requireOneRow(res sql.Result, code string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("package %s: rows affected: %w", code, err)
	}
	if n == 0 {
		return fmt.Errorf("package %s: %w", code, domain.ErrPackageNotFound)
	}
	return nil
}
