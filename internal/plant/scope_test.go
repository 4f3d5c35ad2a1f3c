package plant_test

import (
	"testing"

	"go-inspecta/internal/plant"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	ID    int
	Plant string
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	assert.NoError(t, err)
	return db
}

func TestScope(t *testing.T) {
	db := dryRun(t)

	var rows []row
	stmt := db.Scopes(plant.Scope(" P1 ")).Find(&rows).Statement
	assert.Contains(t, stmt.SQL.String(), "plant = $1")
	assert.Equal(t, []any{"P1"}, stmt.Vars)

	stmt = db.Scopes(plant.Scope("")).Find(&rows).Statement
	assert.NotContains(t, stmt.SQL.String(), "WHERE")
}

func TestAllowedScope(t *testing.T) {
	db := dryRun(t)

	var rows []row
	stmt := db.Scopes(plant.AllowedScope([]string{"P1", "P2"})).Find(&rows).Statement
	assert.Contains(t, stmt.SQL.String(), "plant IN ($1,$2)")

	stmt = db.Scopes(plant.AllowedScope(nil)).Find(&rows).Statement
	assert.Contains(t, stmt.SQL.String(), "1 = 0")
}
