package join

import (
	"cmp"
	"fmt"
	"slices"
)

// Compare orders tuples lexicographically by (KeyR, KeyS, PayR, PayS).
// Keys compare numerically and payloads bytewise.
func Compare(a, b Tuple) int {
	if c := cmp.Compare(a.KeyR, b.KeyR); c != 0 {
		return c
	}
	if c := cmp.Compare(a.KeyS, b.KeyS); c != 0 {
		return c
	}
	if c := cmp.Compare(a.PayR, b.PayR); c != 0 {
		return c
	}
	return cmp.Compare(a.PayS, b.PayS)
}

// Sort sorts tuples in place by Compare.
func Sort(tuples []Tuple) {
	slices.SortFunc(tuples, Compare)
}

// String renders the tuple in result-file field order: keyR payR keyS payS.
func (t Tuple) String() string {
	return fmt.Sprintf("%d %s %d %s", t.KeyR, t.PayR, t.KeyS, t.PayS)
}
