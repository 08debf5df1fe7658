package avl

import (
	"cmp"
	"fmt"
)

// Validate walks the whole tree and returns nil when every invariant holds:
//
//   - keys are strictly ordered (left < node < right, against all ancestors);
//   - every cached height equals 1 + max(child heights);
//   - every balance factor is within [−1, 1];
//   - Size equals the number of reachable nodes.
//
// Otherwise it returns an error wrapping ErrInvariant that names the first
// offending node. Validate is O(n) and read-only.
func (t *Tree[K]) Validate() error {
	count, err := validate(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d but %d reachable nodes", ErrInvariant, t.size, count)
	}

	return nil
}

// validate checks the subtree against the open bounds (lo, hi) inherited
// from its ancestors and returns its node count.
func validate[K cmp.Ordered](n *Node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than ancestor %v", ErrInvariant, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than ancestor %v", ErrInvariant, n.key, *hi)
	}

	nl, err := validate(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	nr, err := validate(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}

	if want := 1 + max(height(n.left), height(n.right)); n.height != want {
		return 0, fmt.Errorf("%w: key %v caches height %d, want %d", ErrInvariant, n.key, n.height, want)
	}
	if b := balanceFactor(n); b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: key %v has balance factor %d", ErrInvariant, n.key, b)
	}

	return nl + nr + 1, nil
}
