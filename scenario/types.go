package scenario

import (
	"fmt"

	"github.com/katalvlaran/avlkit/avl"
	"github.com/pkg/errors"
)

// Sentinel errors returned while reading scenarios.
var (
	ErrNoScenarios   = errors.New("scenario: no scenarios defined")
	ErrEmptyName     = errors.New("scenario: name is empty")
	ErrDuplicateName = errors.New("scenario: duplicate name")
)

// Scenario is one independent run against a fresh tree.
// Insert is applied first, then Remove, then Find.
type Scenario struct {
	Name   string `yaml:"name"`
	Insert []int  `yaml:"insert,omitempty"`
	Remove []int  `yaml:"remove,omitempty"`
	Find   []int  `yaml:"find,omitempty"`
	Expect Expect `yaml:"expect,omitempty"`
}

// Expect holds the optional expectations of a Scenario. A nil field is
// not checked.
type Expect struct {
	Pre   *string `yaml:"pre,omitempty"`
	In    *string `yaml:"in,omitempty"`
	Post  *string `yaml:"post,omitempty"`
	Level *string `yaml:"level,omitempty"`
	Size  *int    `yaml:"size,omitempty"`

	// Found lists the Find keys expected to be present, in Find order.
	Found []int `yaml:"found,omitempty"`
}

// Traversal returns the expected string for order o, if one is set.
func (e Expect) Traversal(o avl.Order) (string, bool) {
	var s *string
	switch o {
	case avl.OrderPre:
		s = e.Pre
	case avl.OrderIn:
		s = e.In
	case avl.OrderPost:
		s = e.Post
	case avl.OrderLevel:
		s = e.Level
	}
	if s == nil {
		return "", false
	}
	return *s, true
}

// Mismatch is one expectation that did not hold.
type Mismatch struct {
	Field string // "pre", "in", "post", "level", "size" or "found"
	Want  string
	Got   string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want %q, got %q", m.Field, m.Want, m.Got)
}

// Result is the outcome of running one Scenario.
type Result struct {
	Name       string
	Traversals map[avl.Order]string
	Size       int
	Found      []int // Find keys that were present, in Find order

	// Invalid is the error from avl.Tree.Validate, nil for a sound tree.
	Invalid    error
	Mismatches []Mismatch
}

// OK reports whether the tree was sound and every expectation held.
func (r Result) OK() bool {
	return r.Invalid == nil && len(r.Mismatches) == 0
}
