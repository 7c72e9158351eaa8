package repositories

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/db"
	"truck-loading-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *SQLPackageRepository {
	t.Helper()

	conn, err := db.Open(db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn, db.SQLite))
	return NewSQLPackageRepository(conn, db.SQLite)
}

func repositoryImpls(t *testing.T) map[string]ports.PackageRepository {
	return map[string]ports.PackageRepository{
		"memory": NewMemoryPackageRepository(),
		"sqlite": newSQLiteRepo(t),
	}
}

func TestPackageRepositoryContract(t *testing.T) {
	for name, repo := range repositoryImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			p1 := &domain.Package{Code: "AAA111", Location: "HCMC", Weight: 4, Distance: 1750, ShippingType: domain.ShippingBankTransfer, PaymentStatus: domain.PaymentUnpaid}
			p2 := &domain.Package{Code: "BBB222", Location: "Hai Phong", Weight: 9, Distance: 120, ShippingType: domain.ShippingCOD, PaymentStatus: domain.PaymentPayLaterCOD}
			p3 := &domain.Package{Code: "CCC333", Location: "Dalat", Weight: 2, Distance: 1480, ShippingType: domain.ShippingCreditCard, PaymentStatus: domain.PaymentUnpaid}

			for _, p := range []*domain.Package{p1, p2, p3} {
				require.NoError(t, repo.InsertPackage(ctx, p))
			}
			assert.Error(t, repo.InsertPackage(ctx, p1), "duplicate code")

			got, err := repo.ListPackages(ctx)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, []string{"AAA111", "BBB222", "CCC333"}, []string{got[0].Code, got[1].Code, got[2].Code})
			assert.Equal(t, *p2, *got[1])

			require.NoError(t, repo.UpdatePaymentStatus(ctx, "AAA111", domain.PaymentPaid))
			one, err := repo.GetPackage(ctx, "AAA111")
			require.NoError(t, err)
			assert.Equal(t, domain.PaymentPaid, one.PaymentStatus)

			require.NoError(t, repo.DeletePackage(ctx, "BBB222"))
			got, err = repo.ListPackages(ctx)
			require.NoError(t, err)
			assert.Len(t, got, 2)

			_, err = repo.GetPackage(ctx, "BBB222")
			assert.True(t, errors.Is(err, domain.ErrPackageNotFound))
			assert.True(t, errors.Is(repo.DeletePackage(ctx, "BBB222"), domain.ErrPackageNotFound))
			assert.True(t, errors.Is(repo.UpdatePaymentStatus(ctx, "ZZZ999", domain.PaymentPaid), domain.ErrPackageNotFound))
		})
	}
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPackageRepository(&domain.Package{Code: "A", Location: "HCMC", Weight: 1, Distance: 1, ShippingType: domain.ShippingCOD, PaymentStatus: domain.PaymentUnpaid})

	p, err := repo.GetPackage(ctx, "A")
	require.NoError(t, err)
	p.PaymentStatus = domain.PaymentPaid

	again, err := repo.GetPackage(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUnpaid, again.PaymentStatus)
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "packages.json")
	body := `[
		{"code": "P100001", "location": "Da Nang", "weight": 3, "distance": 767, "shipping_type": "COD"},
		{"code": "P100002", "location": "HCMC", "weight": 8, "distance": 1750, "shipping_type": "Credit Card", "payment_status": "Paid"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	repo := newSQLiteRepo(t)

	n, err := SeedFromJSON(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = SeedFromJSON(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "seeding is idempotent")

	pkgs, err := repo.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	assert.Equal(t, domain.PaymentPayLaterCOD, pkgs[0].PaymentStatus)
	assert.Equal(t, domain.PaymentPaid, pkgs[1].PaymentStatus)
}

func TestSeedFromJSONRejectsInvalidRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.json")
	body := `[{"code": "P1", "location": "HCMC", "weight": 30, "distance": 1750, "shipping_type": "COD"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, err := SeedFromJSON(context.Background(), NewMemoryPackageRepository(), path)
	var invalid *domain.InvalidPackageError
	assert.True(t, errors.As(err, &invalid))
}

func TestInsertPackagesIsAtomic(t *testing.T) {
	for name, repo := range repositoryImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			existing := &domain.Package{Code: "DUP001", Location: "HCMC", Weight: 1, Distance: 1750, ShippingType: domain.ShippingCOD, PaymentStatus: domain.PaymentPayLaterCOD}
			require.NoError(t, repo.InsertPackage(ctx, existing))

			batch := []*domain.Package{
				{Code: "NEW001", Location: "Dalat", Weight: 2, Distance: 1480, ShippingType: domain.ShippingCOD, PaymentStatus: domain.PaymentPayLaterCOD},
				existing,
				{Code: "NEW002", Location: "Dalat", Weight: 2, Distance: 1480, ShippingType: domain.ShippingCOD, PaymentStatus: domain.PaymentPayLaterCOD},
			}
			assert.Error(t, repo.InsertPackages(ctx, batch))

			got, err := repo.ListPackages(ctx)
			require.NoError(t, err)
			assert.Len(t, got, 1, "failed batch must leave no rows behind")

			require.NoError(t, repo.InsertPackages(ctx, []*domain.Package{batch[0], batch[2]}))
			got, err = repo.ListPackages(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"DUP001", "NEW001", "NEW002"}, []string{got[0].Code, got[1].Code, got[2].Code})
		})
	}
}

func TestSeedPackagesSkipsRepeatedCodes(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	p := &domain.Package{Code: "SAME01", Location: "HCMC", Weight: 1, Distance: 1750, ShippingType: domain.ShippingCOD, PaymentStatus: domain.PaymentPayLaterCOD}

	n, err := SeedPackages(ctx, repo, []*domain.Package{p, p})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCancelledSeedPackageStaysCancelledAfterRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "packages.json")
	body := `[
		{"code": "SEED01", "location": "Da Nang", "weight": 3, "distance": 767, "shipping_type": "COD"},
		{"code": "SEED02", "location": "HCMC", "weight": 5, "distance": 1750, "shipping_type": "COD"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	repo := newSQLiteRepo(t)

	n, err := SeedFromJSONIfEmpty(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, repo.DeletePackage(ctx, "SEED01"))

	// Server restart.
	n, err = SeedFromJSONIfEmpty(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	pkgs, err := repo.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "SEED02", pkgs[0].Code)
}
