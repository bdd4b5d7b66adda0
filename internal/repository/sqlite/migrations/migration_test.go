package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "000001_create_tasks", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS tasks")
	assert.Contains(t, migrations[0].Down, "DROP TABLE IF EXISTS tasks")

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestRunMigrations_CreatesTasksTable(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.ExecContext(ctx,
		"INSERT INTO tasks (description, status, created_at) VALUES (?, ?, ?)",
		"Buy milk", "todo", "2024-01-15T10:30:45Z")
	require.NoError(t, err)

	var dirty bool
	require.NoError(t, db.QueryRowContext(ctx, "SELECT dirty FROM migrations WHERE version = 1").Scan(&dirty))
	assert.False(t, dirty)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&count))
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), count)
}

func TestRunMigrations_EnforcesConstraints(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, RunMigrations(ctx, db))

	tests := []struct {
		name        string
		description string
		status      string
	}{
		{name: "unknown status", description: "x", status: "blocked"},
		{name: "empty description", description: "", status: "todo"},
		{name: "description too long", description: strings.Repeat("a", 501), status: "todo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.ExecContext(ctx,
				"INSERT INTO tasks (description, status, created_at) VALUES (?, ?, ?)",
				tt.description, tt.status, "2024-01-15T10:30:45Z")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "CHECK constraint failed")
		})
	}
}

func TestRunMigrations_DirtyDatabase(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	// Create migrations table
	_, err = db.Exec(`
		CREATE TABLE migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			dirty BOOLEAN DEFAULT FALSE
		)
	`)
	if err != nil {
		t.Fatalf("failed to create migrations table: %v", err)
	}

	// Mark a migration as dirty
	_, err = db.Exec("INSERT INTO migrations (version, dirty) VALUES (1, TRUE)")
	if err != nil {
		t.Fatalf("failed to insert dirty migration: %v", err)
	}

	// Try to run migrations - should fail due to dirty state
	err = RunMigrations(context.Background(), db)
	if err == nil {
		t.Fatal("expected RunMigrations to fail on dirty database, but it succeeded")
	}

	if !strings.Contains(err.Error(), "database is in a dirty state") {
		t.Errorf("expected error to mention dirty state, got: %v", err)
	}

	if !strings.Contains(err.Error(), "failed migration(s): [1]") {
		t.Errorf("expected error to mention failed migration version 1, got: %v", err)
	}
}

func TestRunMigrations_FailedMigrationLeavesDirtyMarker(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, createMigrationsTable(ctx, db))

	err := applyMigration(ctx, db, Migration{Version: 99, Name: "000099_broken", Up: "CREATE TABLE ("})
	require.Error(t, err)

	dirty, err := getDirtyMigrations(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []int{99}, dirty)
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		filename string
		want     int
	}{
		{"000001_create_tasks.up.sql", 1},
		{"000012_add_index.up.sql", 12},
		{"readme.sql", 0},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, extractVersion(tt.filename))
		})
	}
}
