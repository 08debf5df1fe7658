// Package avlkit is a small toolkit around a self-balancing binary search
// tree: an AVL ordered set over any cmp.Ordered key, plus a scenario runner
// and a command-line driver that replay literal key sequences and check the
// traversal strings they produce.
//
// Layout:
//
//	avl/         — the AVL ordered set: insert, remove, find, clear, size,
//	               pre/in/post/level-order traversals, invariant checker, ASCII dump
//	scenario/    — YAML scenarios (insert/remove/find + expected traversals),
//	               built-in course data, runner and result comparison
//	cmd/avlctl/  — CLI: run scenarios, walk or draw ad-hoc trees, export built-ins
//
// Quick example:
//
//	t := avl.New(avl.WithKeys(10, 20, 30, 40, 50, 25))
//	keys, _ := t.Keys(avl.OrderPre)   // [30 20 10 25 40 50]
//
// which is the balanced shape
//
//	        30
//	      /    \
//	    20      40
//	   /  \       \
//	  10   25      50
//
//	go get github.com/katalvlaran/avlkit/avl
package avlkit
