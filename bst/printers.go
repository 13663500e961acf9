package bst

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// debug utilities, used by triage logging and tests, never by the tree
// operations themselves

// NodeString renders the subtree rooted at n as a single line of
// nested "key k, left (...), right (...)" groups. Nil subtrees render
// as "_". Values are omitted so the structure stays legible.
func NodeString(n *Node) string {
	if n == nil {
		return "_"
	}
	return fmt.Sprintf(
		"key %d, left (%s), right (%s)",
		n.Key, NodeString(n.left), NodeString(n.right),
	)
}

// TreeString renders the whole tree one node per line with box-drawing
// connectors, suitable for dumping into a debug log. Children are
// tagged L and R so single-child nodes stay unambiguous. An empty tree
// renders as "empty tree".
func TreeString(t *Tree) string {
	if t.root == nil {
		return "empty tree"
	}
	root := treeprint.NewWithRoot(nodeLabel(t.root))
	addBranches(root, t.root)
	return root.String()
}

func nodeLabel(n *Node) string {
	return fmt.Sprintf("%d=%v", n.Key, n.Value)
}

func addBranches(tp treeprint.Tree, n *Node) {
	if n.left != nil {
		addBranches(tp.AddBranch("L "+nodeLabel(n.left)), n.left)
	}
	if n.right != nil {
		addBranches(tp.AddBranch("R "+nodeLabel(n.right)), n.right)
	}
}
