package expr

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add(`Linux && May`)
	f.Add(`(warning OR error) AND NOT debug`)
	f.Add(`!!x || (y && !z)`)
	f.Add(`A && && B`)
	f.Add(`((unbalanced`)
	f.Add(``)

	f.Fuzz(func(t *testing.T, input string) {
		node, err := Parse(input)
		if err != nil {
			return
		}
		// A successfully compiled tree must evaluate without panicking and
		// must be reentrant.
		first := node.Evaluate("Jun 15 04:06:18 combo kernel: Linux version 2.6.5-1.358", true)
		second := node.Evaluate("Jun 15 04:06:18 combo kernel: Linux version 2.6.5-1.358", true)
		if first != second {
			t.Fatalf("evaluation not idempotent for %q", input)
		}
	})
}
