/*
Package id3 grows decision trees from categorical tables with the ID3
algorithm: every node splits the rows that reach it by the column with the
greatest information gain on the output column, and the column is not used
again below it.
*/
package id3

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pbanos/id3/table"
	"github.com/pbanos/id3/tree"
	"golang.org/x/sync/errgroup"
)

/*
Builder grows decision trees. A Builder holds no state about a particular
build and can be reused, including concurrently.
*/
type Builder struct {
	logger      *slog.Logger
	parallelism int
	onWarning   func(InconsistentLeafWarning)
	warnLock    sync.Mutex
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger the builder reports its progress and warnings to.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

/*
WithParallelism sets the maximum number of sibling branches developed
concurrently on every node. Values below 2 keep the build sequential. The
grown tree does not depend on this setting.
*/
func WithParallelism(n int) Option {
	return func(b *Builder) {
		b.parallelism = n
	}
}

/*
WithWarningHandler sets a function to be called with every
InconsistentLeafWarning found during a build. Calls are serialized.
*/
func WithWarningHandler(f func(InconsistentLeafWarning)) Option {
	return func(b *Builder) {
		b.onWarning = f
	}
}

// NewBuilder returns a Builder configured with the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: slog.New(slog.DiscardHandler), parallelism: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

/*
Build takes a table and the name of its output column and returns the root
of the decision tree that predicts the output from the rest of the columns.

It returns an error wrapping ErrMalformedInput if the table lacks the output
column, has no other column or has no rows, and ErrEmptyPartition if a
partition without rows is ever produced. No tree is returned on error.
*/
func (b *Builder) Build(t *table.Table, outputField string) (*tree.Node, error) {
	if !t.HasColumn(outputField) {
		return nil, fmt.Errorf("output column %q not found: %w", outputField, ErrMalformedInput)
	}
	if len(t.Columns()) < 2 {
		return nil, fmt.Errorf("table needs a column besides %s: %w", outputField, ErrMalformedInput)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("table has no rows: %w", ErrMalformedInput)
	}
	b.logger.Debug("growing tree", "rows", t.Len(), "columns", len(t.Columns()), "output", outputField)
	n, err := b.build(t, outputField)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("tree grown", "nodes", n.Size(), "depth", n.Depth())
	return n, nil
}

func (b *Builder) build(t *table.Table, outputField string) (*tree.Node, error) {
	if len(t.Columns()) == 2 {
		return b.leafNode(t, outputField)
	}
	field, gain, err := BestField(t, outputField)
	if err != nil {
		return nil, err
	}
	values, err := t.Distinct(field)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("splitting node", "attribute", field, "gain", gain, "rows", t.Len(), "branches", len(values))
	branches := make([]tree.Branch, len(values))
	develop := func(i int) error {
		branch, err := b.branch(t, field, values[i], outputField)
		if err != nil {
			return err
		}
		branches[i] = branch
		return nil
	}
	if b.parallelism > 1 && len(values) > 1 {
		var g errgroup.Group
		g.SetLimit(b.parallelism)
		for i := range values {
			g.Go(func() error { return develop(i) })
		}
		err = g.Wait()
	} else {
		for i := range values {
			if err = develop(i); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return &tree.Node{Attribute: field, InformationGain: &gain, Branches: branches}, nil
}

// branch develops the partition of t where field equals value into a
// branch, collapsing it into a label when every outcome below is the same.
func (b *Builder) branch(t *table.Table, field, value, outputField string) (tree.Branch, error) {
	partition, err := t.Where(field, value)
	if err != nil {
		return tree.Branch{}, err
	}
	if partition.Len() == 0 {
		return tree.Branch{}, fmt.Errorf("partition %s=%q: %w", field, value, ErrEmptyPartition)
	}
	partition, err = partition.Drop(field)
	if err != nil {
		return tree.Branch{}, err
	}
	subtree, err := b.build(partition, outputField)
	if err != nil {
		return tree.Branch{}, err
	}
	if label, ok := subtree.CollapsedLabel(); ok {
		return tree.LeafBranch(value, label), nil
	}
	return tree.SubtreeBranch(value, subtree), nil
}

// leafNode builds the node for a table with a single column besides the
// output one, mapping each of its values to the label of the first row
// holding it.
func (b *Builder) leafNode(t *table.Table, outputField string) (*tree.Node, error) {
	var field string
	for _, c := range t.Columns() {
		if c != outputField {
			field = c
		}
	}
	values, err := t.Distinct(field)
	if err != nil {
		return nil, err
	}
	n := &tree.Node{Attribute: field, Branches: make([]tree.Branch, 0, len(values))}
	for _, v := range values {
		partition, err := t.Where(field, v)
		if err != nil {
			return nil, err
		}
		if partition.Len() == 0 {
			return nil, fmt.Errorf("partition %s=%q: %w", field, v, ErrEmptyPartition)
		}
		labels, err := partition.Distinct(outputField)
		if err != nil {
			return nil, err
		}
		if len(labels) > 1 {
			b.warn(InconsistentLeafWarning{Attribute: field, Value: v, Label: labels[0], Labels: labels})
		}
		n.Branches = append(n.Branches, tree.LeafBranch(v, labels[0]))
	}
	return n, nil
}

func (b *Builder) warn(w InconsistentLeafWarning) {
	b.logger.Warn("inconsistent leaf", "attribute", w.Attribute, "value", w.Value, "labels", w.Labels, "label", w.Label)
	if b.onWarning == nil {
		return
	}
	b.warnLock.Lock()
	defer b.warnLock.Unlock()
	b.onWarning(w)
}
