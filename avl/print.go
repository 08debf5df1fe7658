package avl

import (
	"cmp"
	"fmt"
	"io"
)

// branch tells printNode which connector to draw for a node.
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Fprint writes a sideways ASCII drawing of the tree to w: the right
// subtree above each node, the left subtree below, one node per line with
// its cached height and balance factor. An empty tree writes nothing.
//
// The tree for keys 2, 1, 3 renders as:
//
//	       /------+ 3 h=1 b=+0
//	|------+ 2 h=2 b=+0
//	       \------+ 1 h=1 b=+0
func (t *Tree[K]) Fprint(w io.Writer) error {
	p := &printer{w: w}
	printNode(p, t.root, "", branchRoot)

	return p.err
}

// printer remembers the first write error and skips writes after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func printNode[K cmp.Ordered](p *printer, n *Node[K], prefix string, br branch) {
	if n == nil {
		return
	}
	if n.right != nil {
		pad := "       "
		if br == branchLeft {
			pad = "|      "
		}
		printNode(p, n.right, prefix+pad, branchRight)
	}

	switch br {
	case branchRoot:
		p.printf("%s|------+ ", prefix)
	case branchLeft:
		p.printf("%s\\------+ ", prefix)
	case branchRight:
		p.printf("%s/------+ ", prefix)
	}
	p.printf("%v h=%d b=%+d\n", n.key, n.height, balanceFactor(n))

	if n.left != nil {
		pad := "       "
		if br == branchRight {
			pad = "|      "
		}
		printNode(p, n.left, prefix+pad, branchLeft)
	}
}
