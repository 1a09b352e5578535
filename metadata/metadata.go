/*
Package metadata provides methods to parse the description of the features
of a table, also known as metadata, from YAML documents, and to check tables
against it.
*/
package metadata

import (
	"errors"
	"fmt"
	"os"

	"github.com/pbanos/id3/table"
	yaml "gopkg.in/yaml.v2"
)

var (
	// ErrMissingColumn is returned when a declared feature has no column on a table.
	ErrMissingColumn = errors.New("metadata: declared feature missing from table")
	// ErrUnknownValue is returned when a table holds a value not available for its feature.
	ErrUnknownValue = errors.New("metadata: unknown feature value")
	// ErrUndeclaredFeature is returned when the output names a feature that was not declared.
	ErrUndeclaredFeature = errors.New("metadata: undeclared feature")
)

/*
Feature represents a categorical property that can only take a value among
a finite set. A feature declared without values accepts any value.
*/
type Feature struct {
	Name   string
	Values []string
}

// Valid reports whether value is available for the feature.
func (f *Feature) Valid(value string) bool {
	if len(f.Values) == 0 {
		return true
	}
	for _, av := range f.Values {
		if av == value {
			return true
		}
	}
	return false
}

func (f *Feature) String() string {
	return f.Name
}

/*
Metadata holds the features of a table in their declared order and the
name of the one to predict.
*/
type Metadata struct {
	Output   string
	Features []*Feature
}

/*
ReadMetadata takes a slice of bytes with a feature specification in YAML and
returns the metadata parsed from it or an error.
The YAML is expected to be an object containing a features property, whose
value should be an object with a property for each feature with its name and
a list of valid values, and optionally an output property naming the feature
to predict. Values are read as strings: YAML 1.1 booleans such as yes or no
must be quoted to be kept verbatim.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	doc := struct {
		Output   string        `yaml:"output"`
		Features yaml.MapSlice `yaml:"features"`
	}{}
	err := yaml.Unmarshal(md, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if len(doc.Features) == 0 {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	m := &Metadata{Output: doc.Output}
	for _, item := range doc.Features {
		name := fmt.Sprintf("%v", item.Key)
		f := &Feature{Name: name}
		switch values := item.Value.(type) {
		case nil:
		case []interface{}:
			for _, v := range values {
				f.Values = append(f.Values, fmt.Sprintf("%v", v))
			}
		default:
			return nil, fmt.Errorf("invalid declaration of type %T for feature %s: expected a list of values", item.Value, name)
		}
		m.Features = append(m.Features, f)
	}
	if m.Output != "" && m.Feature(m.Output) == nil {
		return nil, fmt.Errorf("output %s: %w", m.Output, ErrUndeclaredFeature)
	}
	return m, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	m, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %w", filepath, err)
	}
	return m, err
}

// Feature returns the declared feature with the given name or nil.
func (m *Metadata) Feature(name string) *Feature {
	for _, f := range m.Features {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Names returns the names of the declared features in order.
func (m *Metadata) Names() []string {
	names := make([]string, len(m.Features))
	for i, f := range m.Features {
		names[i] = f.Name
	}
	return names
}

/*
Apply takes a table and returns a table with only its declared feature
columns, in declared order. It returns an error if a declared feature
has no column on the table or a row holds a value not available for its
feature.
*/
func (m *Metadata) Apply(t *table.Table) (*table.Table, error) {
	columns := make([][]string, len(m.Features))
	for i, f := range m.Features {
		if !t.HasColumn(f.Name) {
			return nil, fmt.Errorf("feature %s: %w", f.Name, ErrMissingColumn)
		}
		values, err := t.Column(f.Name)
		if err != nil {
			return nil, err
		}
		for row, v := range values {
			if !f.Valid(v) {
				return nil, fmt.Errorf("row %d: value %q for feature %s: %w", row+1, v, f.Name, ErrUnknownValue)
			}
		}
		columns[i] = values
	}
	rows := make([][]string, t.Len())
	for r := range rows {
		rows[r] = make([]string, len(columns))
		for c := range columns {
			rows[r][c] = columns[c][r]
		}
	}
	return table.New(m.Names(), rows)
}
