package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMigrationPart(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE projects (id int);
ALTER TABLE projects ADD COLUMN code text;

-- +migrate Down
DROP TABLE projects;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE projects")
		assert.Contains(t, up, "ALTER TABLE projects")
		assert.NotContains(t, up, "DROP TABLE projects")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE projects")
		assert.NotContains(t, down, "CREATE TABLE projects")
	})

	t.Run("Missing section", func(t *testing.T) {
		assert.Empty(t, extractMigrationPart("-- +migrate Up\nSELECT 1;\n", "Down"))
	})
}

func writeMigration(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunMigrationsUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dir := t.TempDir()
	applied := writeMigration(t, dir, "0001_schema.sql", "-- +migrate Up\nCREATE TABLE stores (id int);")
	pending := writeMigration(t, dir, "0002_seed.sql", "-- +migrate Up\nINSERT INTO roles (name) VALUES ('admin');\n-- +migrate Down\nDELETE FROM roles;")

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0001_schema.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0002_seed.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO roles").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002_seed.sql").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, runMigrationsUp(db, []string{applied, pending}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsUp_FailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	file := writeMigration(t, t.TempDir(), "0001_schema.sql", "-- +migrate Up\nCREATE TABLE broken (;")

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs("0001_schema.sql").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE broken").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = runMigrationsUp(db, []string{file})
	assert.ErrorContains(t, err, "0001_schema.sql")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsDown(t *testing.T) {
	t.Run("Rolls back latest", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		file := writeMigration(t, t.TempDir(), "0002_seed.sql", "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nDELETE FROM roles;")

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0002_seed.sql"))
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM roles").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("DELETE FROM schema_migrations").
			WithArgs("0002_seed.sql").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, runMigrationsDown(db, []string{file}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing applied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		require.NoError(t, runMigrationsDown(db, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing file", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT version FROM schema_migrations").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0009_gone.sql"))

		assert.ErrorContains(t, runMigrationsDown(db, nil), "0009_gone.sql")
	})
}

func TestRun_UnknownMode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorContains(t, run(db, "sideways", t.TempDir()), "unknown mode")
}
