package scenario

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/avlkit/avl"
)

// Format joins the keys of a traversal with single spaces.
func Format[K any](seq iter.Seq[K]) string {
	var sb strings.Builder
	for k := range seq {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, k)
	}
	return sb.String()
}

// Run executes s against a fresh tree and compares the outcome with
// s.Expect.
func Run(s Scenario) Result {
	t := avl.New(avl.WithKeys(s.Insert...))
	for _, k := range s.Remove {
		t.Remove(k)
	}

	res := Result{
		Name:       s.Name,
		Traversals: make(map[avl.Order]string, len(avl.Orders)),
		Size:       t.Size(),
		Found:      []int{},
		Invalid:    t.Validate(),
	}
	for _, k := range s.Find {
		if t.Contains(k) {
			res.Found = append(res.Found, k)
		}
	}
	for _, o := range avl.Orders {
		seq, _ := t.Traverse(o) // every listed order is supported
		res.Traversals[o] = Format(seq)
	}

	for _, o := range avl.Orders {
		want, ok := s.Expect.Traversal(o)
		if ok && want != res.Traversals[o] {
			res.Mismatches = append(res.Mismatches, Mismatch{Field: o.String(), Want: want, Got: res.Traversals[o]})
		}
	}
	if s.Expect.Size != nil && *s.Expect.Size != res.Size {
		res.Mismatches = append(res.Mismatches, Mismatch{
			Field: "size",
			Want:  strconv.Itoa(*s.Expect.Size),
			Got:   strconv.Itoa(res.Size),
		})
	}
	if s.Expect.Found != nil && !slices.Equal(s.Expect.Found, res.Found) {
		res.Mismatches = append(res.Mismatches, Mismatch{
			Field: "found",
			Want:  Format(slices.Values(s.Expect.Found)),
			Got:   Format(slices.Values(res.Found)),
		})
	}

	return res
}

// RunAll runs every scenario in order; each one gets its own tree.
func RunAll(scenarios []Scenario) []Result {
	out := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, Run(s))
	}
	return out
}

// Failed counts the results that are not OK.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
