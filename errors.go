package id3

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput is returned when a table cannot be used to grow a
	// tree: it lacks the output column, has no column to split on or has
	// no rows.
	ErrMalformedInput = errors.New("id3: malformed input")
	// ErrEmptyPartition is returned when a partition without rows reaches
	// entropy computation or tree growth. Partitions are built from observed
	// values, so this signals a broken invariant.
	ErrEmptyPartition = errors.New("id3: empty partition")
)

/*
InconsistentLeafWarning describes rows that share a value of the last
attribute available on a branch but disagree on the output. The leaf takes
the label of the first of those rows. It is not returned as an error by
Build; it is reported to the builder's warning handler and logger.
*/
type InconsistentLeafWarning struct {
	Attribute string
	Value     string
	Label     string
	Labels    []string
}

func (w InconsistentLeafWarning) Error() string {
	return fmt.Sprintf("inconsistent leaf for %s %q: labels %s, keeping %q", w.Attribute, w.Value, strings.Join(w.Labels, ", "), w.Label)
}
