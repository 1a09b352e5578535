/*
Package csv reads tables from delimited text streams whose first row holds
the column names.
*/
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/table"
)

// ErrNoHeader is returned when the stream has no header row.
var ErrNoHeader = errors.New("csv: no header row")

type config struct {
	comma            rune
	trimLeadingSpace bool
}

// Option configures how a table is read.
type Option func(*config)

// WithComma sets the field delimiter, ',' by default.
func WithComma(r rune) Option {
	return func(c *config) {
		c.comma = r
	}
}

// WithTrimLeadingSpace makes the reader ignore leading white space in
// values. Values are kept verbatim by default.
func WithTrimLeadingSpace() Option {
	return func(c *config) {
		c.trimLeadingSpace = true
	}
}

/*
ReadTable takes an io.Reader for a CSV stream and returns the table parsed
from it or an error.

The header or first row of the CSV content is expected to consist of the
names of the columns. Every other row must hold a value for every column.
Values are kept as they are, leading spaces included, unless
WithTrimLeadingSpace is given.
*/
func ReadTable(reader io.Reader, opts ...Option) (*table.Table, error) {
	c := &config{comma: ','}
	for _, opt := range opts {
		opt(c)
	}
	r := csv.NewReader(reader)
	r.Comma = c.comma
	r.TrimLeadingSpace = c.trimLeadingSpace
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	rows := [][]string{}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("parsing line %d: %d values for %d columns: %w", l, len(row), len(header), table.ErrRaggedRow)
		}
		rows = append(rows, row)
	}
	t, err := table.New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	return t, nil
}

/*
ReadTableFromFilePath takes a filepath string, opens the file to which it
points (os.Stdin if it is "") and uses ReadTable to return the table read
from it or an error.
*/
func ReadTableFromFilePath(filepath string, opts ...Option) (*table.Table, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading table: %v", err)
		}
		defer f.Close()
	}
	t, err := ReadTable(f, opts...)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return t, err
}
