package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func appliedVersion(t *testing.T, db *sql.DB) int {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM migrations WHERE dirty = 0").Scan(&version)
	require.NoError(t, err)
	return version
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	version := appliedVersion(t, db)
	assert.Equal(t, 1, version)

	for _, table := range []string{"tasks", "templates", "holidays", "settings", "meta", "debug_log"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	var index string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_tasks_date_order'`).Scan(&index)
	require.NoError(t, err)
}

func TestRunMigrations_DirtyDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, createMigrationsTable(db))
	_, err := db.Exec(`INSERT INTO migrations (version, dirty) VALUES (1, 1)`)
	require.NoError(t, err)

	err = RunMigrations(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is in a dirty state; failed migration(s): [1]")
}

func TestRunMigrations_KeepsExistingRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db))

	_, err := db.Exec(`INSERT INTO templates (id, title, type, enabled, days) VALUES ('t1', 'Journal', 'weekly', 1, '1,3')`)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db))

	var days string
	require.NoError(t, db.QueryRow(`SELECT days FROM templates WHERE id = 't1'`).Scan(&days))
	assert.Equal(t, "1,3", days)
}

func TestLoadMigrations_PairsUpAndDown(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 1)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "000001_initial_schema", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE")
	assert.Contains(t, migrations[0].Down, "DROP TABLE")
}
