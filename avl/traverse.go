package avl

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// PreOrder yields the keys of the subtree rooted at n: node, left, right.
func PreOrder[K cmp.Ordered](n *Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		preOrder(n, yield)
	}
}

// InOrder yields the keys of the subtree rooted at n in ascending order.
func InOrder[K cmp.Ordered](n *Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(n, yield)
	}
}

// PostOrder yields the keys of the subtree rooted at n: left, right, node.
func PostOrder[K cmp.Ordered](n *Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		postOrder(n, yield)
	}
}

// LevelOrder yields the keys of the subtree rooted at n breadth-first,
// each level left to right.
func LevelOrder[K cmp.Ordered](n *Node[K]) iter.Seq[K] {
	return func(yield func(K) bool) {
		if n == nil {
			return
		}
		queue := []*Node[K]{n}
		for len(queue) > 0 {
			cur := queue[0]
			queue[0] = nil
			queue = queue[1:]
			if !yield(cur.key) {
				return
			}
			if cur.left != nil {
				queue = append(queue, cur.left)
			}
			if cur.right != nil {
				queue = append(queue, cur.right)
			}
		}
	}
}

// The recursive walkers return false once yield asked to stop, so the
// whole walk unwinds without visiting further nodes.

func preOrder[K cmp.Ordered](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.key) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func inOrder[K cmp.Ordered](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.key) && inOrder(n.right, yield)
}

func postOrder[K cmp.Ordered](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, yield) && postOrder(n.right, yield) && yield(n.key)
}

// PreOrder walks the whole tree in pre-order.
func (t *Tree[K]) PreOrder() iter.Seq[K] { return PreOrder(t.root) }

// InOrder walks the whole tree in ascending key order.
func (t *Tree[K]) InOrder() iter.Seq[K] { return InOrder(t.root) }

// PostOrder walks the whole tree in post-order.
func (t *Tree[K]) PostOrder() iter.Seq[K] { return PostOrder(t.root) }

// LevelOrder walks the whole tree breadth-first.
func (t *Tree[K]) LevelOrder() iter.Seq[K] { return LevelOrder(t.root) }

// Traverse returns the walk of the whole tree in the given order.
// An unsupported order yields ErrUnknownOrder.
//
// The sequence reads the live tree each time it is ranged over; mutating
// the tree while ranging is not supported.
func (t *Tree[K]) Traverse(order Order) (iter.Seq[K], error) {
	switch order {
	case OrderPre:
		return t.PreOrder(), nil
	case OrderIn:
		return t.InOrder(), nil
	case OrderPost:
		return t.PostOrder(), nil
	case OrderLevel:
		return t.LevelOrder(), nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
}

// Keys collects the traversal in the given order into a new slice.
// An empty tree gives an empty, non-nil slice.
func (t *Tree[K]) Keys(order Order) ([]K, error) {
	seq, err := t.Traverse(order)
	if err != nil {
		return nil, err
	}

	return slices.AppendSeq(make([]K, 0, t.size), seq), nil
}
