// Package avl provides an AVL ordered set: a self-balancing binary search
// tree over any cmp.Ordered key type.
//
// Overview:
//
//   - Every node caches the height of its subtree (leaf = 1, nil = 0).
//   - After each structural change the cached heights are refreshed and the
//     balance factor height(left) − height(right) is restored to [−1, 1] with
//     one of the four classic rotations (LL, LR, RR, RL).
//   - Keys are unique. Inserting a present key or removing an absent one is
//     a no-op that leaves size and traversal output unchanged.
//
// Complexity:
//
//   - Insert, Remove, Find, Min, Max: O(log n), height ≤ 1.44·log2(n+2).
//   - Traversals: O(n) time; O(h) extra space for the depth-first orders,
//     O(w) for level order where w is the widest level.
//   - Clear, Size, Height: O(1).
//
// Traversals:
//
//	PreOrder   – node, left, right
//	InOrder    – left, node, right (ascending keys)
//	PostOrder  – left, right, node
//	LevelOrder – breadth-first, left to right, FIFO queue seeded with the root
//
// Each traversal is an iter.Seq[K]: lazy, finite and restartable. The free
// functions accept any *Node so a walk can start at a subtree.
//
// Errors (sentinel):
//
//   - ErrUnknownOrder: Traverse/Keys/ParseOrder received an unknown order.
//   - ErrInvariant:    Validate found a broken invariant. A rotation on a node
//     missing the child it promotes panics with an error wrapping it.
//
// Example usage:
//
//	t := avl.New[int](avl.WithKeys(10, 20, 30, 40, 50, 25))
//	for k := range t.PreOrder() {
//	    fmt.Print(k, " ")
//	}
//	// 30 20 10 25 40 50
//
// Thread safety:
//
//   - A Tree has no internal locking. Share it across goroutines only behind
//     one external mutex held for the duration of every call.
package avl
