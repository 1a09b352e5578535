/*
Package mongotable reads tables from MongoDB collections.
*/
package mongotable

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pbanos/id3/table"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	idField     = "_id"
	dialTimeout = 10 * time.Second
)

// ErrMissingField is returned when a document lacks a field present on the first one.
var ErrMissingField = errors.New("mongotable: document misses field")

/*
Dial takes a MongoDB connection URL and returns a session on it or an error
if the server cannot be reached.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.DialWithTimeout(url, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return session, nil
}

/*
Load takes a context and a collection and returns a table with a row per
document in the collection. The columns are the fields of the first
document but _id, in document order; every other document must have them
all. Values are read as their %v text representation.
*/
func Load(ctx context.Context, c *mgo.Collection) (*table.Table, error) {
	iter := c.Find(nil).Iter()
	defer iter.Close()
	var columns []string
	var rows [][]string
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var doc bson.D
		if !iter.Next(&doc) {
			break
		}
		if columns == nil {
			columns = documentColumns(doc)
		}
		row, err := documentRow(columns, doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", n, err)
		}
		rows = append(rows, row)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", c.FullName, err)
	}
	return table.New(columns, rows)
}

func documentColumns(doc bson.D) []string {
	columns := make([]string, 0, len(doc))
	for _, e := range doc {
		if e.Name != idField {
			columns = append(columns, e.Name)
		}
	}
	return columns
}

func documentRow(columns []string, doc bson.D) ([]string, error) {
	m := doc.Map()
	row := make([]string, len(columns))
	for i, c := range columns {
		v, ok := m[c]
		if !ok || v == nil {
			return nil, fmt.Errorf("%s: %w", c, ErrMissingField)
		}
		row[i] = fmt.Sprintf("%v", v)
	}
	return row, nil
}
