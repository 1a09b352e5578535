package id3

import (
	"fmt"

	"github.com/pbanos/id3/table"
)

// FieldGain holds the information gain obtained by splitting on a column.
type FieldGain struct {
	Field string
	Gain  float64
}

/*
DataEntropy takes a table and the name of its output column and returns the
Shannon entropy (base 2) of the distribution of output values over all the
table rows. It returns an error wrapping ErrMalformedInput if the table has no
output column and ErrEmptyPartition if it has no rows.
*/
func DataEntropy(t *table.Table, outputField string) (float64, error) {
	if !t.HasColumn(outputField) {
		return 0.0, fmt.Errorf("output column %q not found: %w", outputField, ErrMalformedInput)
	}
	if t.Len() == 0 {
		return 0.0, fmt.Errorf("computing entropy of %s: %w", outputField, ErrEmptyPartition)
	}
	values, err := t.Distinct(outputField)
	if err != nil {
		return 0.0, err
	}
	counts, err := t.CountValues(outputField)
	if err != nil {
		return 0.0, err
	}
	var result float64
	total := float64(t.Len())
	for _, v := range values {
		p := float64(counts[v]) / total
		result -= p * log2(p)
	}
	return result, nil
}

/*
FieldEntropy takes a table, the name of a column and the name of the output
column and returns the expected entropy of the output after splitting the
table by the values of the column: the entropy of every partition weighted
by its share of the table rows, summed in order of first appearance of the
values.
*/
func FieldEntropy(t *table.Table, field, outputField string) (float64, error) {
	if t.Len() == 0 {
		return 0.0, fmt.Errorf("computing entropy of %s by %s: %w", outputField, field, ErrEmptyPartition)
	}
	values, err := t.Distinct(field)
	if err != nil {
		return 0.0, err
	}
	var result float64
	total := float64(t.Len())
	for _, v := range values {
		partition, err := t.Where(field, v)
		if err != nil {
			return 0.0, err
		}
		pEntropy, err := DataEntropy(partition, outputField)
		if err != nil {
			return 0.0, fmt.Errorf("partition %s=%q: %w", field, v, err)
		}
		result += pEntropy * (float64(partition.Len()) / total)
	}
	return result, nil
}

/*
InformationGain returns the decrease in entropy of the output column
achieved by splitting the table by the given column.
*/
func InformationGain(t *table.Table, field, outputField string) (float64, error) {
	dEntropy, err := DataEntropy(t, outputField)
	if err != nil {
		return 0.0, err
	}
	fEntropy, err := FieldEntropy(t, field, outputField)
	if err != nil {
		return 0.0, err
	}
	return dEntropy - fEntropy, nil
}

/*
Gains returns the information gain of every column of the table but the
output one, in column order.
*/
func Gains(t *table.Table, outputField string) ([]FieldGain, error) {
	dEntropy, err := DataEntropy(t, outputField)
	if err != nil {
		return nil, err
	}
	var result []FieldGain
	for _, c := range t.Columns() {
		if c == outputField {
			continue
		}
		fEntropy, err := FieldEntropy(t, c, outputField)
		if err != nil {
			return nil, err
		}
		result = append(result, FieldGain{c, dEntropy - fEntropy})
	}
	return result, nil
}

/*
BestField returns the column other than the output one whose split yields
the greatest information gain, along with that gain. Ties are resolved in
favour of the first column. It returns an error wrapping ErrMalformedInput if
the table has no column besides the output.
*/
func BestField(t *table.Table, outputField string) (string, float64, error) {
	gains, err := Gains(t, outputField)
	if err != nil {
		return "", 0.0, err
	}
	if len(gains) == 0 {
		return "", 0.0, fmt.Errorf("no columns to split on besides %s: %w", outputField, ErrMalformedInput)
	}
	best := gains[0]
	for _, g := range gains[1:] {
		if g.Gain > best.Gain {
			best = g
		}
	}
	return best.Field, best.Gain, nil
}
