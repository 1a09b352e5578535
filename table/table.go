/*
Package table provides an immutable, categorical, column-oriented table
from which decision trees are grown.

Every operation that changes the shape of a table (partitioning rows,
dropping a column) returns a new, independently owned table and leaves
the receiver untouched.
*/
package table

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn is returned when a column name is not part of the table.
	ErrUnknownColumn = errors.New("table: unknown column")
	// ErrDuplicateColumn is returned when the same column name is given twice.
	ErrDuplicateColumn = errors.New("table: duplicate column")
	// ErrEmptyColumnName is returned when a column has an empty name.
	ErrEmptyColumnName = errors.New("table: empty column name")
	// ErrRaggedRow is returned when a row does not have one value per column.
	ErrRaggedRow = errors.New("table: row length does not match column count")
)

/*
Table represents an ordered sequence of named columns holding categorical
string values, all of them sharing the same number of rows.
*/
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

/*
New takes a slice of column names and a slice of rows and returns a table
holding a copy of them, or an error if a column name is empty or repeated,
or a row does not hold exactly one value per column.
*/
func New(columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if _, ok := index[c]; ok {
			return nil, fmt.Errorf("column %q: %w", c, ErrDuplicateColumn)
		}
		index[c] = i
	}
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    make([][]string, 0, len(rows)),
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values for %d columns: %w", i, len(r), len(columns), ErrRaggedRow)
		}
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	return t, nil
}

// Columns returns the names of the table columns in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns a copy of the i-th row of the table.
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

/*
Sample returns the i-th row of the table as a map of column names to
values.
*/
func (t *Table) Sample(i int) map[string]string {
	s := make(map[string]string, len(t.columns))
	for j, c := range t.columns {
		s[c] = t.rows[i][j]
	}
	return s
}

// Value returns the value of the given column on the i-th row.
func (t *Table) Value(i int, name string) (string, error) {
	j, err := t.columnIndex(name)
	if err != nil {
		return "", err
	}
	return t.rows[i][j], nil
}

// Column returns a copy of the values of the given column in row order.
func (t *Table) Column(name string) ([]string, error) {
	j, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(t.rows))
	for i, r := range t.rows {
		values[i] = r[j]
	}
	return values, nil
}

/*
Distinct returns the distinct values of the given column in order of
first appearance.
*/
func (t *Table) Distinct(name string) ([]string, error) {
	j, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	var result []string
	encountered := make(map[string]bool)
	for _, r := range t.rows {
		if !encountered[r[j]] {
			encountered[r[j]] = true
			result = append(result, r[j])
		}
	}
	return result, nil
}

/*
CountValues returns a map with the number of rows holding each value of
the given column.
*/
func (t *Table) CountValues(name string) (map[string]int, error) {
	j, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int)
	for _, r := range t.rows {
		result[r[j]]++
	}
	return result, nil
}

/*
Where returns the partition of the table made of the rows whose value for
the given column equals value, in their original order. The partition may
be empty.
*/
func (t *Table) Where(name, value string) (*Table, error) {
	j, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	rows := [][]string{}
	for _, r := range t.rows {
		if r[j] == value {
			rows = append(rows, append([]string(nil), r...))
		}
	}
	return &Table{columns: t.Columns(), index: t.copyIndex(), rows: rows}, nil
}

// Drop returns a copy of the table without the given column.
func (t *Table) Drop(name string) (*Table, error) {
	j, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	columns := make([]string, 0, len(t.columns)-1)
	columns = append(columns, t.columns[:j]...)
	columns = append(columns, t.columns[j+1:]...)
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		nr := make([]string, 0, len(columns))
		nr = append(nr, r[:j]...)
		rows[i] = append(nr, r[j+1:]...)
	}
	return &Table{columns: columns, index: index, rows: rows}, nil
}

func (t *Table) String() string {
	return fmt.Sprintf("{Table %d columns x %d rows}", len(t.columns), len(t.rows))
}

func (t *Table) columnIndex(name string) (int, error) {
	j, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	return j, nil
}

func (t *Table) copyIndex() map[string]int {
	index := make(map[string]int, len(t.index))
	for c, j := range t.index {
		index[c] = j
	}
	return index
}
