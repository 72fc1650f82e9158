package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/repository"
	"github.com/locvowork/employee_service/internal/repository/builder"
)

func TestDialectPlaceholder(t *testing.T) {
	assert.Equal(t, builder.Dollar, DialectPostgres.Placeholder())
	assert.Equal(t, builder.Question, DialectSQLite.Placeholder())
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, User: "app", Password: "secret", DBName: "hr", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=hr sslmode=disable", cfg.DSN())
}

func TestMigrateSQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLiteDB(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	require.NoError(t, Migrate(ctx, db, DialectSQLite))

	var n int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&n))
	assert.Zero(t, n)
}

func TestMigrateUnknownDialect(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLiteDB(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, Migrate(ctx, db, Dialect("mysql")))
}

func TestDataSeeder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryEmployeeRepository()
	seeder := NewDataSeeder(repo, nil)

	created, err := seeder.SeedData(ctx, GetPresetCount(PresetSmall))
	require.NoError(t, err)
	assert.Equal(t, 10, created)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 10)
	for _, e := range all {
		assert.NotEmpty(t, e.Email)
		assert.GreaterOrEqual(t, e.DepartmentID, int64(1))
		assert.LessOrEqual(t, e.DepartmentID, int64(5))
	}

	_, err = seeder.Reindex(ctx)
	assert.ErrorIs(t, err, domain.ErrSearchUnavailable)

	cleared, err := seeder.ClearData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, cleared)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetPresetCount(t *testing.T) {
	assert.Equal(t, 10, GetPresetCount(PresetSmall))
	assert.Equal(t, 100, GetPresetCount(PresetMedium))
	assert.Equal(t, 1000, GetPresetCount(PresetLarge))
	assert.Equal(t, 100, GetPresetCount("unknown"))
}

func TestEmployeeDocRoundTrip(t *testing.T) {
	e := domain.Employee{ID: 7, Name: "John Doe", Role: "Engineer", Email: "john@example.com", DepartmentID: 2, UserID: 9}
	assert.Equal(t, e, toDoc(e).toEmployee())
}
