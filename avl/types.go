package avl

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the avl package.
var (
	// ErrUnknownOrder indicates a traversal order outside the four supported ones.
	ErrUnknownOrder = errors.New("avl: unknown traversal order")

	// ErrInvariant indicates that the tree structure violates an AVL or BST invariant.
	ErrInvariant = errors.New("avl: invariant violated")
)

// Order selects one of the fixed traversal orders.
type Order int

const (
	// OrderPre visits node, left subtree, right subtree.
	OrderPre Order = iota

	// OrderIn visits left subtree, node, right subtree (ascending keys).
	OrderIn

	// OrderPost visits left subtree, right subtree, node.
	OrderPost

	// OrderLevel visits breadth-first, each level left to right.
	OrderLevel
)

// Orders lists every supported order in declaration order.
var Orders = []Order{OrderPre, OrderIn, OrderPost, OrderLevel}

// String returns the short name of the order ("pre", "in", "post", "level").
func (o Order) String() string {
	switch o {
	case OrderPre:
		return "pre"
	case OrderIn:
		return "in"
	case OrderPost:
		return "post"
	case OrderLevel:
		return "level"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps a name to an Order. Short ("pre") and long ("preorder")
// names are accepted, case-insensitively.
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pre", "preorder":
		return OrderPre, nil
	case "in", "inorder":
		return OrderIn, nil
	case "post", "postorder":
		return OrderPost, nil
	case "level", "levelorder":
		return OrderLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Options holds construction-time parameters of a Tree.
type Options[K cmp.Ordered] struct {
	// Keys are inserted, in order, into the new tree.
	Keys []K
}

// Option configures New via functional arguments.
type Option[K cmp.Ordered] func(*Options[K])

// WithKeys seeds the tree with keys, inserted left to right.
// Duplicates among them collapse as with Insert.
func WithKeys[K cmp.Ordered](keys ...K) Option[K] {
	return func(o *Options[K]) {
		o.Keys = append(o.Keys, keys...)
	}
}

// DefaultOptions returns Options for an empty tree.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{}
}
