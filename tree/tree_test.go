package tree_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pbanos/id3/table"
	"github.com/pbanos/id3/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gain(g float64) *float64 {
	return &g
}

// weatherTree is the tree grown from the Weather/Humidity/Regar example.
func weatherTree() *tree.Node {
	return &tree.Node{
		Attribute:       "Weather",
		InformationGain: gain(0.31127812445913283),
		Branches: []tree.Branch{
			tree.SubtreeBranch("Sunny", &tree.Node{
				Attribute: "Humidity",
				Branches: []tree.Branch{
					tree.LeafBranch("High", "No"),
					tree.LeafBranch("Low", "Yes"),
				},
			}),
			tree.LeafBranch("Rain", "Yes"),
		},
	}
}

func TestString_Rendering(t *testing.T) {
	want := "Weather, Entropy Decrease: 0.31127812445913283\n" +
		"\tSunny\n" +
		"\t\tHumidity, Entropy Decrease: No need to calculate\n" +
		"\t\t\tHigh\n" +
		"\t\t\t\tNo\n" +
		"\t\t\tLow\n" +
		"\t\t\t\tYes\n" +
		"\tRain\n" +
		"\t\tYes\n"
	assert.Equal(t, want, weatherTree().String())

	var buf bytes.Buffer
	n, err := weatherTree().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, buf.String())
}

func TestString_GainFormatting(t *testing.T) {
	tests := []struct {
		gain *float64
		want string
	}{
		{nil, "No need to calculate"},
		{gain(1), "1.0"},
		{gain(0), "0.0"},
		{gain(0.5), "0.5"},
		{gain(2.5e-05), "2.5e-05"},
	}
	for _, tt := range tests {
		n := &tree.Node{Attribute: "a", InformationGain: tt.gain, Branches: []tree.Branch{tree.LeafBranch("x", "y")}}
		assert.Equal(t, "a, Entropy Decrease: "+tt.want+"\n\tx\n\t\ty\n", n.String())
	}
}

func TestBranchUnion(t *testing.T) {
	leaf := tree.LeafBranch("v", "label")
	assert.True(t, leaf.IsLeaf())

	sub := tree.SubtreeBranch("v", &tree.Node{Attribute: "a"})
	assert.False(t, sub.IsLeaf())
	assert.Empty(t, sub.Label)
}

func TestGain(t *testing.T) {
	g, ok := weatherTree().Gain()
	assert.True(t, ok)
	assert.InDelta(t, 0.311, g, 0.001)

	_, ok = (&tree.Node{}).Gain()
	assert.False(t, ok)
}

func TestCollapsedLabel(t *testing.T) {
	tests := []struct {
		name      string
		node      *tree.Node
		wantLabel string
		wantOK    bool
	}{
		{
			name:      "same labels",
			node:      &tree.Node{Branches: []tree.Branch{tree.LeafBranch("a", "Yes"), tree.LeafBranch("b", "Yes")}},
			wantLabel: "Yes",
			wantOK:    true,
		},
		{
			name: "different labels",
			node: &tree.Node{Branches: []tree.Branch{tree.LeafBranch("a", "Yes"), tree.LeafBranch("b", "No")}},
		},
		{
			name: "subtree branch",
			node: &tree.Node{Branches: []tree.Branch{tree.LeafBranch("a", ""), tree.SubtreeBranch("b", &tree.Node{})}},
		},
		{
			name: "no branches",
			node: &tree.Node{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := tt.node.CollapsedLabel()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestWalk(t *testing.T) {
	var visited []string
	var depths []int
	err := weatherTree().Walk(func(depth int, n *tree.Node) error {
		visited = append(visited, n.Attribute)
		depths = append(depths, depth)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Weather", "Humidity"}, visited)
	assert.Equal(t, []int{0, 1}, depths)

	stop := errors.New("stop")
	err = weatherTree().Walk(func(int, *tree.Node) error { return stop })
	assert.ErrorIs(t, err, stop)

	assert.Equal(t, 2, weatherTree().Size())
	assert.Equal(t, 2, weatherTree().Depth())
}

func TestPredict(t *testing.T) {
	root := weatherTree()

	label, err := root.Predict(map[string]string{"Weather": "Sunny", "Humidity": "Low"})
	require.NoError(t, err)
	assert.Equal(t, "Yes", label)

	label, err = root.Predict(map[string]string{"Weather": "Rain"})
	require.NoError(t, err)
	assert.Equal(t, "Yes", label)

	_, err = root.Predict(map[string]string{"Weather": "Snow"})
	assert.ErrorIs(t, err, tree.ErrCannotPredictFromSample)

	_, err = root.Predict(map[string]string{"Weather": "Sunny"})
	assert.ErrorIs(t, err, tree.ErrCannotPredictFromSample)
}

func TestTest(t *testing.T) {
	tbl, err := table.New(
		[]string{"Weather", "Humidity", "Regar"},
		[][]string{
			{"Sunny", "High", "No"},
			{"Sunny", "Low", "No"},
			{"Rain", "High", "Yes"},
			{"Snow", "High", "Yes"},
		},
	)
	require.NoError(t, err)

	rate, unpredictable, err := weatherTree().Test(tbl, "Regar")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, rate, 1e-9)
	assert.Equal(t, 1, unpredictable)

	_, _, err = weatherTree().Test(tbl, "Missing")
	assert.ErrorIs(t, err, table.ErrUnknownColumn)
}
