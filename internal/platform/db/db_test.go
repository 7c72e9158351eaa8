package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialectRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE b = ? AND c IN (?,?)"

	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, "SELECT a FROM t WHERE b = $1 AND c IN ($2,$3)", Postgres.Rebind(q))
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, Postgres, DialectFor("postgres://u:p@localhost:5432/trucks"))
	assert.Equal(t, Postgres, DialectFor("postgresql://localhost/trucks"))
	assert.Equal(t, SQLite, DialectFor("data/app.db"))
	assert.Equal(t, SQLite, DialectFor(":memory:"))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?,?,?", Placeholders(3))
}
