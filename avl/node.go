package avl

import (
	"cmp"
	"fmt"
)

// Node is one key of a Tree. Its children are owned exclusively by it;
// there are no parent pointers.
//
// Nodes returned by Find or Root are views into the live tree: they are
// invalidated by the next Insert, Remove or Clear.
type Node[K cmp.Ordered] struct {
	key    K
	height int // cached height of the subtree rooted here; leaf = 1
	left   *Node[K]
	right  *Node[K]
}

// newNode returns a detached leaf.
func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the node's key, or the zero value for a nil node.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Height returns the cached subtree height (0 for a nil node).
func (n *Node[K]) Height() int {
	return height(n)
}

// Balance returns height(left) − height(right) (0 for a nil node).
func (n *Node[K]) Balance() int {
	return balanceFactor(n)
}

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// height reads the cache; it never walks the subtree.
func height[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// updateHeight must run right after a child pointer of n changes and
// before the balance of n is evaluated.
func updateHeight[K cmp.Ordered](n *Node[K]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func balanceFactor[K cmp.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateLeft promotes n.right to the subtree root:
//
//	  n                r
//	 / \              / \
//	a   r     →      n   c
//	   / \          / \
//	  b   c        a   b
//
// Heights are refreshed child first (n), then the new root.
func rotateLeft[K cmp.Ordered](n *Node[K]) *Node[K] {
	if n == nil || n.right == nil {
		panic(fmt.Errorf("%w: left rotation needs a right child", ErrInvariant))
	}
	r := n.right
	n.right = r.left
	r.left = n
	updateHeight(n)
	updateHeight(r)

	return r
}

// rotateRight is the mirror of rotateLeft: it promotes n.left.
func rotateRight[K cmp.Ordered](n *Node[K]) *Node[K] {
	if n == nil || n.left == nil {
		panic(fmt.Errorf("%w: right rotation needs a left child", ErrInvariant))
	}
	l := n.left
	n.left = l.right
	l.right = n
	updateHeight(n)
	updateHeight(l)

	return l
}

// rebalance restores |balance| ≤ 1 at n, assuming both subtrees are
// already balanced and n.height is current. It returns the new subtree root.
func rebalance[K cmp.Ordered](n *Node[K]) *Node[K] {
	b := balanceFactor(n)
	switch {
	case b > 1 && balanceFactor(n.left) >= 0: // left-left
		return rotateRight(n)
	case b > 1: // left-right
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case b < -1 && balanceFactor(n.right) <= 0: // right-right
		return rotateLeft(n)
	case b < -1: // right-left
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// minNode returns the leftmost node of the subtree, or nil.
func minNode[K cmp.Ordered](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the rightmost node of the subtree, or nil.
func maxNode[K cmp.Ordered](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
