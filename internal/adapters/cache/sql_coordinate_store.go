package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"truck-loading-service/internal/domain"
	"truck-loading-service/internal/platform/db"
	"truck-loading-service/internal/platform/obs"
)

// SQLCoordinateStore is a SQL-backed table mapping city names to coordinates.
type SQLCoordinateStore struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLCoordinateStore(conn *sql.DB, dialect db.Dialect) *SQLCoordinateStore {
	return &SQLCoordinateStore{DB: conn, Dialect: dialect}
}

// Fetch stored coordinates for the given cities. Unknown cities are absent from the result.
func (s *SQLCoordinateStore) GetMany(
	ctx context.Context,
	cities []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "coordinates.sql.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("coordinate store: db is nil")
	}

	uniq := uniqueNames(cities)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	q := s.Dialect.Rebind(`
	SELECT city, x, y
	FROM city_coordinates
	WHERE city IN (` + db.Placeholders(len(uniq)) + `);
	`)

	args := make([]any, len(uniq))
	for i, c := range uniq {
		args[i] = c
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get coordinates: query city_coordinates table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Coordinates, len(uniq))
	for rows.Next() {
		var city string
		var x, y float64
		if err := rows.Scan(&city, &x, &y); err != nil {
			return nil, fmt.Errorf("get coordinates: scan rows: %w", err)
		}
		out[city] = domain.Coordinates{X: x, Y: y}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get coordinates: row iteration: %w", err)
	}

	return out, nil
}

// Store city -> coordinate mappings, replacing existing rows.
func (s *SQLCoordinateStore) PutMany(ctx context.Context, coords map[string]domain.Coordinates) error {
	if s.DB == nil {
		return errors.New("coordinate store: db is nil")
	}

	if len(coords) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put coordinates: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.Dialect.Rebind(`
	INSERT INTO city_coordinates (city, x, y)
	VALUES (?, ?, ?)
	ON CONFLICT (city) DO UPDATE
	SET x = excluded.x,
		y = excluded.y;
	`))
	if err != nil {
		return fmt.Errorf("put coordinates: db prepare: %w", err)
	}
	defer stmt.Close()

	for city, c := range coords {
		if strings.TrimSpace(city) == "" {
			return fmt.Errorf("put coordinates: empty city key")
		}

		if _, err := stmt.ExecContext(ctx, city, c.X, c.Y); err != nil {
			return fmt.Errorf("put coordinates city=%q: %w", city, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put coordinates commit: %w", err)
	}

	return nil
}

// uniqueNames trims names and drops blanks and repeats, keeping order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	uniq := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}

		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		uniq = append(uniq, n)
	}
	return uniq
}
