package dataset

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/riffle/pipeline"
)

// QueryValues runs a single-column query against a SQLite database and
// returns the rows as normalized Values, in query order.
//
// The database is opened read-only with a 5-second busy timeout so a
// concurrent writer cannot stall the CLI indefinitely. The query text is
// passed to SQLite verbatim; ordering is whatever the query declares.
func QueryValues(path, query string) ([]pipeline.Value, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", path)}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path))
	if err != nil {
		return nil, &LoadError{Code: ErrCodeQueryError, Message: fmt.Sprintf("failed to open database: %v", err)}
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeQueryError, Message: fmt.Sprintf("query failed: %v", err)}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeQueryError, Message: fmt.Sprintf("reading columns: %v", err)}
	}
	if len(cols) != 1 {
		return nil, &LoadError{Code: ErrCodeQueryError, Message: fmt.Sprintf("query must produce exactly one column, got %d", len(cols))}
	}

	var values []pipeline.Value
	for i := 0; rows.Next(); i++ {
		var raw any
		if err := rows.Scan(&raw); err != nil {
			return nil, &LoadError{Code: ErrCodeQueryError, Message: fmt.Sprintf("scanning row %d: %v", i, err)}
		}
		v, err := pipeline.Normalize(raw)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBadValue, Message: fmt.Sprintf("row %d: %v", i, err)}
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeQueryError, Message: fmt.Sprintf("iterating rows: %v", err)}
	}

	return values, nil
}
