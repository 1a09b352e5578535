package tree

import (
	"errors"
	"fmt"

	"github.com/pbanos/id3/table"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by the Predict method of a
node when the tree cannot make a prediction for that kind of sample: the
sample lacks a value for an attribute the tree asks about, or holds a value
for which the tree has no branch.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Predict takes a sample as a map of column names to values and returns the
label the tree rooted at n predicts for it, following on every node the
branch for the sample's value of the node attribute. It returns an error
wrapping ErrCannotPredictFromSample when no branch can be followed.
*/
func (n *Node) Predict(sample map[string]string) (string, error) {
	if n == nil {
		return "", fmt.Errorf("nil tree cannot predict samples")
	}
	for {
		v, ok := sample[n.Attribute]
		if !ok {
			return "", fmt.Errorf("sample has no value for %s: %w", n.Attribute, ErrCannotPredictFromSample)
		}
		b, ok := n.Branch(v)
		if !ok {
			return "", fmt.Errorf("no branch for %s %q: %w", n.Attribute, v, ErrCannotPredictFromSample)
		}
		if b.IsLeaf() {
			return b.Label, nil
		}
		n = b.Subtree
	}
}

/*
Test takes a table and the name of the output column and returns three values:
  - the prediction success rate of the tree over the rows of the table
  - the number of rows the tree could not predict because of
    ErrCannotPredictFromSample errors, which count as failures
  - an error if the table has no output column or no rows. If this is not
    nil, the other values will be 0.0 and 0 respectively
*/
func (n *Node) Test(t *table.Table, outputField string) (float64, int, error) {
	if !t.HasColumn(outputField) {
		return 0.0, 0, fmt.Errorf("testing tree: column %q: %w", outputField, table.ErrUnknownColumn)
	}
	if t.Len() == 0 {
		return 0.0, 0, fmt.Errorf("testing tree: empty table")
	}
	var hits float64
	var errCount int
	for i := 0; i < t.Len(); i++ {
		sample := t.Sample(i)
		label, err := n.Predict(sample)
		if err != nil {
			if !errors.Is(err, ErrCannotPredictFromSample) {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		if label == sample[outputField] {
			hits += 1.0
		}
	}
	return hits / float64(t.Len()), errCount, nil
}
