/*
Package sqltable reads tables from SQL databases. Drivers for SQLite3
and PostgreSQL are registered by the package.
*/
package sqltable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pbanos/id3/table"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNullValue is returned when a queried row holds NULL for a column.
	ErrNullValue = errors.New("sqltable: NULL value")
	// ErrInvalidName is returned for table names that cannot be quoted safely.
	ErrInvalidName = errors.New("sqltable: invalid table name")
)

/*
OpenSQLite3 takes a path to an SQLite3 database file and returns a database
handle on it or an error if it fails to open as an sqlite3 database.
*/
func OpenSQLite3(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	return db, nil
}

/*
OpenPostgreSQL takes a PostgreSQL database connection URL and returns a
database handle on it or an error.
*/
func OpenPostgreSQL(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %v", err)
	}
	return db, nil
}

/*
Query takes the name of a database table and returns a query selecting all
of its rows, or an error if the name is empty or contains a '"' character.
*/
func Query(tableName string) (string, error) {
	if tableName == "" || strings.ContainsAny(tableName, `"`) {
		return "", fmt.Errorf("%q: %w", tableName, ErrInvalidName)
	}
	return fmt.Sprintf(`SELECT * FROM "%s"`, tableName), nil
}

/*
Load takes a context, a database handle, a query and its arguments and
returns a table with a column for every column of the query result and a
row for every returned row, every value read as text. It returns an error
wrapping ErrNullValue if any value is NULL.
*/
func Load(ctx context.Context, db *sql.DB, query string, args ...interface{}) (*table.Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying table: %v", err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns: %v", err)
	}
	values := make([]sql.NullString, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	var data [][]string
	for n := 1; rows.Next(); n++ {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %v", n, err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			if !v.Valid {
				return nil, fmt.Errorf("row %d, column %s: %w", n, columns[i], ErrNullValue)
			}
			row[i] = v.String
		}
		data = append(data, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %v", err)
	}
	return table.New(columns, data)
}
