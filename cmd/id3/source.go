package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pbanos/id3/metadata"
	"github.com/pbanos/id3/table"
	"github.com/pbanos/id3/table/csv"
	"github.com/pbanos/id3/table/mongotable"
	"github.com/pbanos/id3/table/sqltable"
	"github.com/spf13/cobra"
)

// sourceConfig holds the flags describing where a table is read from
// and which of its columns is the output to predict.
type sourceConfig struct {
	*rootCmdConfig
	metadataInput string
	outputField   string
	comma         string
	trimSpace     bool
	tableName     string
	database      string
	collection    string
	parallel      int
	metadata      *metadata.Metadata
}

func (sc *sourceConfig) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(sc.metadataInput), "metadata", "m", "", "path to a YML file declaring the features of the input and their valid values")
	cmd.Flags().StringVarP(&(sc.outputField), "output-field", "c", "", "name of the column the tree should predict (defaults to the metadata output)")
	cmd.Flags().StringVar(&(sc.comma), "comma", ",", "field separator for CSV input")
	cmd.Flags().BoolVar(&(sc.trimSpace), "trim-leading-space", false, "ignore leading white space in CSV values")
	cmd.Flags().StringVar(&(sc.tableName), "table", "", "name of the table to read from SQLite3 and PostgreSQL inputs")
	cmd.Flags().StringVar(&(sc.database), "db", "", "name of the database to read from MongoDB inputs (defaults to the one in the URL)")
	cmd.Flags().StringVar(&(sc.collection), "collection", "", "name of the collection to read from MongoDB inputs")
}

// Validate checks the flags and loads the metadata if given, so that the
// output field is known afterwards.
func (sc *sourceConfig) Validate() error {
	if utf8.RuneCountInString(sc.comma) != 1 {
		return fmt.Errorf("comma flag must be a single character, got %q", sc.comma)
	}
	if sc.metadataInput != "" {
		sc.Logf("Reading metadata from %s...", sc.metadataInput)
		md, err := metadata.ReadMetadataFromFile(sc.metadataInput)
		if err != nil {
			return err
		}
		sc.metadata = md
		if sc.outputField == "" {
			sc.outputField = md.Output
		}
	}
	if sc.outputField == "" {
		return fmt.Errorf("required output-field flag was not set and no metadata output is declared")
	}
	return nil
}

/*
loadTable takes a context and a source and reads a table from it. The
source is interpreted as:
  - a PostgreSQL connection URL if it starts with postgresql:// or postgres://
  - a MongoDB connection URL if it starts with mongodb://
  - a SQLite3 database file if it ends in .db
  - a CSV file otherwise, or the given stdin if empty

If metadata was given the table is projected onto its features and its
values validated.
*/
func (sc *sourceConfig) loadTable(ctx context.Context, source string, stdin io.Reader) (*table.Table, error) {
	var t *table.Table
	var err error
	switch {
	case strings.HasPrefix(source, "postgresql://"), strings.HasPrefix(source, "postgres://"):
		t, err = sc.sqlTable(ctx, source, sqltable.OpenPostgreSQL)
	case strings.HasPrefix(source, "mongodb://"):
		t, err = sc.mongoTable(ctx, source)
	case strings.HasSuffix(source, ".db"):
		t, err = sc.sqlTable(ctx, source, sqltable.OpenSQLite3)
	default:
		comma, _ := utf8.DecodeRuneInString(sc.comma)
		opts := []csv.Option{csv.WithComma(comma)}
		if sc.trimSpace {
			opts = append(opts, csv.WithTrimLeadingSpace())
		}
		if source == "" {
			sc.Logf("Reading table from STDIN...")
			t, err = csv.ReadTable(stdin, opts...)
		} else {
			sc.Logf("Reading table from %s...", source)
			t, err = csv.ReadTableFromFilePath(source, opts...)
		}
	}
	if err != nil {
		return nil, err
	}
	if sc.metadata != nil {
		t, err = sc.metadata.Apply(t)
		if err != nil {
			return nil, err
		}
	}
	if !t.HasColumn(sc.outputField) {
		return nil, fmt.Errorf("output field %s is not a column of the input", sc.outputField)
	}
	sc.Logf("Read %v", t)
	return t, nil
}

func (sc *sourceConfig) sqlTable(ctx context.Context, source string, open func(string) (*sql.DB, error)) (*table.Table, error) {
	query, err := sqltable.Query(sc.tableName)
	if err != nil {
		return nil, fmt.Errorf("table flag: %w", err)
	}
	db, err := open(source)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	sc.Logf("Reading table %s from SQL database...", sc.tableName)
	return sqltable.Load(ctx, db, query)
}

func (sc *sourceConfig) mongoTable(ctx context.Context, source string) (*table.Table, error) {
	if sc.collection == "" {
		return nil, fmt.Errorf("required collection flag was not set for a MongoDB input")
	}
	session, err := mongotable.Dial(source)
	if err != nil {
		return nil, err
	}
	defer session.Close()
	sc.Logf("Reading collection %s from MongoDB...", sc.collection)
	return mongotable.Load(ctx, session.DB(sc.database).C(sc.collection))
}
