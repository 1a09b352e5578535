package table_test

import (
	"testing"

	"github.com/pbanos/id3/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"Weather", "Humidity", "Regar"},
		[][]string{
			{"Sunny", "High", "No"},
			{"Sunny", "Low", "Yes"},
			{"Rain", "High", "Yes"},
			{"Rain", "High", "Yes"},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    [][]string
		wantErr error
	}{
		{"duplicate column", []string{"a", "a"}, nil, table.ErrDuplicateColumn},
		{"empty column name", []string{"a", ""}, nil, table.ErrEmptyColumnName},
		{"short row", []string{"a", "b"}, [][]string{{"x"}}, table.ErrRaggedRow},
		{"long row", []string{"a"}, [][]string{{"x", "y"}}, table.ErrRaggedRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.New(tt.columns, tt.rows)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	columns := []string{"a", "b"}
	rows := [][]string{{"x", "y"}}
	tbl, err := table.New(columns, rows)
	require.NoError(t, err)

	columns[0] = "changed"
	rows[0][0] = "changed"

	assert.Equal(t, []string{"a", "b"}, tbl.Columns())
	assert.Equal(t, []string{"x", "y"}, tbl.Row(0))
}

func TestDistinct_FirstAppearanceOrder(t *testing.T) {
	tbl, err := table.New([]string{"c"}, [][]string{{"b"}, {"a"}, {"b"}, {"c"}, {"a"}})
	require.NoError(t, err)

	values, err := tbl.Distinct("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, values)

	_, err = tbl.Distinct("missing")
	assert.ErrorIs(t, err, table.ErrUnknownColumn)
}

func TestCountValues(t *testing.T) {
	counts, err := weatherTable(t).CountValues("Regar")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Yes": 3, "No": 1}, counts)
}

func TestWhere(t *testing.T) {
	tbl := weatherTable(t)

	sunny, err := tbl.Where("Weather", "Sunny")
	require.NoError(t, err)
	assert.Equal(t, 2, sunny.Len())
	assert.Equal(t, []string{"Sunny", "High", "No"}, sunny.Row(0))
	assert.Equal(t, []string{"Sunny", "Low", "Yes"}, sunny.Row(1))

	none, err := tbl.Where("Weather", "Snow")
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())
	assert.Equal(t, tbl.Columns(), none.Columns())

	assert.Equal(t, 4, tbl.Len(), "partitioning must not alter the source table")
}

func TestDrop(t *testing.T) {
	tbl := weatherTable(t)

	dropped, err := tbl.Drop("Weather")
	require.NoError(t, err)
	assert.Equal(t, []string{"Humidity", "Regar"}, dropped.Columns())
	assert.Equal(t, []string{"High", "No"}, dropped.Row(0))
	assert.False(t, dropped.HasColumn("Weather"))

	v, err := dropped.Value(1, "Regar")
	require.NoError(t, err)
	assert.Equal(t, "Yes", v)

	assert.True(t, tbl.HasColumn("Weather"))
	assert.Len(t, tbl.Row(0), 3)

	_, err = tbl.Drop("missing")
	assert.ErrorIs(t, err, table.ErrUnknownColumn)
}

func TestColumnAndSample(t *testing.T) {
	tbl := weatherTable(t)

	col, err := tbl.Column("Humidity")
	require.NoError(t, err)
	assert.Equal(t, []string{"High", "Low", "High", "High"}, col)

	assert.Equal(t, map[string]string{"Weather": "Rain", "Humidity": "High", "Regar": "Yes"}, tbl.Sample(2))
	assert.Equal(t, "{Table 3 columns x 4 rows}", tbl.String())
}
