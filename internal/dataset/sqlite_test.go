package dataset

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE samples (id INTEGER PRIMARY KEY, v TEXT, n INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO samples (v, n) VALUES ('alpha', 3), ('beta', 1), ('alpha', 2)`)
	require.NoError(t, err)
	return path
}

func TestQueryValuesTextColumn(t *testing.T) {
	path := newTestDB(t)
	got, err := QueryValues(path, "SELECT v FROM samples ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, []any{"alpha", "beta", "alpha"}, got)
}

func TestQueryValuesIntegerColumn(t *testing.T) {
	path := newTestDB(t)
	got, err := QueryValues(path, "SELECT n FROM samples ORDER BY n")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)
}

func TestQueryValuesRejectsMultipleColumns(t *testing.T) {
	path := newTestDB(t)
	_, err := QueryValues(path, "SELECT v, n FROM samples")
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeQueryError, le.Code)
}

func TestQueryValuesBadSQL(t *testing.T) {
	path := newTestDB(t)
	_, err := QueryValues(path, "SELECT FROM nothing")
	require.Error(t, err)
}

func TestQueryValuesRejectsNull(t *testing.T) {
	path := newTestDB(t)
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO samples (v, n) VALUES (NULL, NULL)`)
	require.NoError(t, err)
	db.Close()

	_, err = QueryValues(path, "SELECT v FROM samples")
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeBadValue, le.Code)
}
