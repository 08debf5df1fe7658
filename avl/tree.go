package avl

import "cmp"

// Tree is an AVL ordered set of unique keys.
//
// The zero value is an empty, ready-to-use tree.
type Tree[K cmp.Ordered] struct {
	root *Node[K]
	size int // number of nodes reachable from root
}

// New creates a tree and applies the given options.
//
// Complexity: O(m log m) for m seed keys, O(1) otherwise.
func New[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	cfg := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree[K]{}
	for _, k := range cfg.Keys {
		t.Insert(k)
	}

	return t
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the root (0 when empty).
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Insert adds key to the tree and reports whether it was added.
// A key already present is left untouched and false is returned.
//
// Complexity: O(log n).
func (t *Tree[K]) Insert(key K) bool {
	before := t.size
	t.root = t.insert(t.root, key)

	return t.size != before
}

// insert returns the (possibly rotated) root of the subtree after adding key.
func (t *Tree[K]) insert(n *Node[K], key K) *Node[K] {
	if n == nil {
		t.size++
		return newNode(key)
	}

	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = t.insert(n.left, key)
	case c > 0:
		n.right = t.insert(n.right, key)
	default:
		// duplicate: nothing below n changed
		return n
	}

	updateHeight(n)
	return rebalance(n)
}

// Remove deletes key from the tree and reports whether it was present.
//
// Complexity: O(log n).
func (t *Tree[K]) Remove(key K) bool {
	before := t.size
	t.root = t.remove(t.root, key)

	return t.size != before
}

// remove returns the (possibly rotated, possibly nil) root of the subtree
// after deleting key. size is decremented only where a node is unlinked.
func (t *Tree[K]) remove(n *Node[K], key K) *Node[K] {
	if n == nil {
		return nil
	}

	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left = t.remove(n.left, key)
	case c > 0:
		n.right = t.remove(n.right, key)
	default:
		if n.left == nil || n.right == nil {
			t.size--
			if n.left != nil {
				return n.left
			}
			return n.right // nil for a leaf
		}
		// Two children: take over the in-order successor's key, then
		// delete the successor, which has no left child.
		succ := minNode(n.right)
		n.key = succ.key
		n.right = t.remove(n.right, succ.key)
	}

	updateHeight(n)
	return rebalance(n)
}

// Find returns the node holding key. The second result is false when the
// key is absent, in which case the node is nil.
//
// Complexity: O(log n).
func (t *Tree[K]) Find(key K) (*Node[K], bool) {
	n := t.root
	for n != nil {
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, true
		}
	}

	return nil, false
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.Find(key)
	return ok
}

// Min returns the smallest key; ok is false for an empty tree.
func (t *Tree[K]) Min() (key K, ok bool) {
	if n := minNode(t.root); n != nil {
		return n.key, true
	}
	return key, false
}

// Max returns the largest key; ok is false for an empty tree.
func (t *Tree[K]) Max() (key K, ok bool) {
	if n := maxNode(t.root); n != nil {
		return n.key, true
	}
	return key, false
}

// Clear drops every node. Calling it on an empty tree is a no-op.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}
