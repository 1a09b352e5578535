/*
Package tree defines the nodes of a decision tree grown with ID3 along
with ways to render, traverse and use them to make predictions.
*/
package tree

import (
	"io"
	"strconv"
	"strings"
)

// GainNotComputed is rendered in place of the information gain of nodes
// that have none.
const GainNotComputed = "No need to calculate"

/*
Walk goes through the tree rooted at n in pre-order, following branch
order, and calls f with every node and its depth (0 for n). If f returns
an error the traversal is aborted and the error returned.
*/
func (n *Node) Walk(f func(depth int, n *Node) error) error {
	return n.walk(0, f)
}

func (n *Node) walk(depth int, f func(int, *Node) error) error {
	err := f(depth, n)
	if err != nil {
		return err
	}
	for _, b := range n.Branches {
		if b.IsLeaf() {
			continue
		}
		err = b.Subtree.walk(depth+1, f)
		if err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	var size int
	n.Walk(func(int, *Node) error {
		size++
		return nil
	})
	return size
}

// Depth returns the number of nodes on the longest path from n down.
func (n *Node) Depth() int {
	var depth int
	n.Walk(func(d int, _ *Node) error {
		if d+1 > depth {
			depth = d + 1
		}
		return nil
	})
	return depth
}

/*
String returns the indented rendering of the tree rooted at n. Every node
takes a line with its attribute and information gain, followed by a line
per branch value one tab deeper and, two tabs deeper than the node, either
the rendering of the branch subtree or its label.
*/
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, 0)
	return sb.String()
}

// WriteTo writes the rendering of the tree rooted at n onto w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	written, err := io.WriteString(w, n.String())
	return int64(written), err
}

func (n *Node) render(sb *strings.Builder, nesting int) {
	sb.WriteString(strings.Repeat("\t", nesting))
	sb.WriteString(n.Attribute)
	sb.WriteString(", Entropy Decrease: ")
	sb.WriteString(formatGain(n.InformationGain))
	sb.WriteString("\n")
	for _, b := range n.Branches {
		sb.WriteString(strings.Repeat("\t", nesting+1))
		sb.WriteString(b.Value)
		sb.WriteString("\n")
		if !b.IsLeaf() {
			b.Subtree.render(sb, nesting+2)
			continue
		}
		sb.WriteString(strings.Repeat("\t", nesting+2))
		sb.WriteString(b.Label)
		sb.WriteString("\n")
	}
}

// formatGain renders gains with the shortest representation that reads
// back as the same float64, always showing a fractional part.
func formatGain(gain *float64) string {
	if gain == nil {
		return GainNotComputed
	}
	s := strconv.FormatFloat(*gain, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
