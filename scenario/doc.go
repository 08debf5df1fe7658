// Package scenario drives avl trees with literal key sequences and checks
// the traversal strings they produce.
//
// A scenario inserts keys into a fresh avl.Tree[int], removes keys, looks
// keys up, and then compares the result with its expectations:
//
//	scenarios:
//	  - name: rotations
//	    insert: [10, 20, 30, 40, 50, 25]
//	    expect:
//	      pre: "30 20 10 25 40 50"
//	      size: 6
//
// Traversal strings are keys joined by single spaces; an empty tree gives
// the empty string. Every expectation is optional. Independently of the
// expectations, each run validates the tree invariants.
//
// Scenarios come from YAML (Parse, Load through an afero.Fs) or from
// Builtin, which holds the reference course data.
//
// Errors (sentinel):
//
//   - ErrNoScenarios:   the document holds no scenarios.
//   - ErrEmptyName:     a scenario has no name.
//   - ErrDuplicateName: two scenarios share a name.
package scenario
