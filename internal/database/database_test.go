package database

import (
	"io/fs"
	"regexp"
	"testing"
	"testing/fstest"

	"trivia-api/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSQLXDB_UnsupportedDriver(t *testing.T) {
	_, err := NewSQLXDB(config.DBConfig{Driver: "sqlite3"}, "file::memory:")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestRunSQLFiles_AppliesUpFilesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"m/002_b.up.sql":   {Data: []byte("CREATE TABLE b (id NUMBER);\n")},
		"m/001_a.up.sql":   {Data: []byte("CREATE TABLE a (id NUMBER)")},
		"m/001_a.down.sql": {Data: []byte("DROP TABLE a")},
		"m/README":         {Data: []byte("ignored")},
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id NUMBER)")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, RunSQLFiles(db, fsys, "m"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"migrations/postgres", "migrations/oracle"} {
		entries, err := fs.ReadDir(migrationsFS, dir)
		require.NoError(t, err, dir)
		assert.NotEmpty(t, entries, dir)
	}
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.Error(t, RunMigrations(db, "mysql"))
}
