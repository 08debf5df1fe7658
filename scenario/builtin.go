package scenario

func str(s string) *string { return &s }

func num(n int) *int { return &n }

// Builtin returns the reference course scenarios. Each call returns fresh
// values the caller may modify.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:   "ascending-rotations",
			Insert: []int{10, 20, 30, 40, 50, 25},
			Expect: Expect{
				Pre:  str("30 20 10 25 40 50"),
				In:   str("10 20 25 30 40 50"),
				Size: num(6),
			},
		},
		{
			Name:   "mixed-sign-keys",
			Insert: []int{9, 5, 10, 0, 6, 11, -1, 1, 2},
			Expect: Expect{
				Pre:  str("9 1 0 -1 5 2 6 10 11"),
				Size: num(9),
			},
		},
		{
			Name:   "remove-rotates-root",
			Insert: []int{9, 5, 10, 0, 6, 11, -1, 1, 2},
			Remove: []int{10},
			Expect: Expect{
				Pre:  str("1 0 -1 9 5 2 6 11"),
				Size: num(8),
			},
		},
		{
			Name:   "single-key",
			Insert: []int{42},
			Find:   []int{42},
			Expect: Expect{
				Pre:   str("42"),
				In:    str("42"),
				Post:  str("42"),
				Level: str("42"),
				Size:  num(1),
				Found: []int{42},
			},
		},
		{
			Name:   "remove-last-key",
			Insert: []int{42},
			Remove: []int{42},
			Expect: Expect{
				Pre:   str(""),
				In:    str(""),
				Post:  str(""),
				Level: str(""),
				Size:  num(0),
			},
		},
		{
			Name: "find-on-empty",
			Find: []int{0, 1, -1},
			Expect: Expect{
				Size:  num(0),
				Found: []int{},
			},
		},
	}
}
