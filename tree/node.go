package tree

/*
Node is a decision point of the tree. It splits the rows that reach it
by the values of a single attribute.
*/
type Node struct {
	// The name of the column this node splits on
	Attribute string
	// The entropy decrease achieved by splitting on Attribute. It is nil
	// for nodes built when Attribute was the only column left besides the
	// output, where no gain is computed.
	InformationGain *float64
	// One branch per value of Attribute observed on the rows that reached
	// this node, in order of first appearance.
	Branches []Branch
}

/*
Branch connects a value of its node's attribute with either a subtree
that keeps splitting the rows or the label predicted for them. Exactly one
of the two is set.
*/
type Branch struct {
	Value   string
	Subtree *Node
	Label   string
}

// LeafBranch returns a branch ending on the given label.
func LeafBranch(value, label string) Branch {
	return Branch{Value: value, Label: label}
}

// SubtreeBranch returns a branch continuing on the given node.
func SubtreeBranch(value string, n *Node) Branch {
	return Branch{Value: value, Subtree: n}
}

// IsLeaf reports whether the branch ends on a label.
func (b Branch) IsLeaf() bool {
	return b.Subtree == nil
}

// Gain returns the information gain of the node and whether it was computed.
func (n *Node) Gain() (float64, bool) {
	if n.InformationGain == nil {
		return 0, false
	}
	return *n.InformationGain, true
}

// Branch returns the branch for the given value, if the node has one.
func (n *Node) Branch(value string) (Branch, bool) {
	for _, b := range n.Branches {
		if b.Value == value {
			return b, true
		}
	}
	return Branch{}, false
}

/*
CollapsedLabel returns the label shared by every branch of the node and
true when all of its branches are leaves with the same label. It returns
false otherwise, including for nodes without branches.
*/
func (n *Node) CollapsedLabel() (string, bool) {
	if len(n.Branches) == 0 {
		return "", false
	}
	label := n.Branches[0].Label
	for _, b := range n.Branches {
		if !b.IsLeaf() || b.Label != label {
			return "", false
		}
	}
	return label, true
}
