package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShapes(t *testing.T) {
	t.Run("single keyword", func(t *testing.T) {
		node, err := Parse("Linux")
		require.NoError(t, err)
		kw, ok := node.(*KeywordNode)
		require.True(t, ok)
		assert.Equal(t, "Linux", kw.Keyword)
	})

	t.Run("and binds tighter than or", func(t *testing.T) {
		// A || B && C must parse as Or(A, And(B, C)).
		node, err := Parse("A || B && C")
		require.NoError(t, err)

		or, ok := node.(*OrNode)
		require.True(t, ok)
		_, ok = or.Left.(*KeywordNode)
		assert.True(t, ok)
		_, ok = or.Right.(*AndNode)
		assert.True(t, ok)
	})

	t.Run("binary operators are left-associative", func(t *testing.T) {
		node, err := Parse("A && B && C")
		require.NoError(t, err)

		and, ok := node.(*AndNode)
		require.True(t, ok)
		_, ok = and.Left.(*AndNode)
		assert.True(t, ok)
		right, ok := and.Right.(*KeywordNode)
		require.True(t, ok)
		assert.Equal(t, "C", right.Keyword)
	})

	t.Run("not stacks", func(t *testing.T) {
		node, err := Parse("!!A")
		require.NoError(t, err)

		outer, ok := node.(*NotNode)
		require.True(t, ok)
		_, ok = outer.Child.(*NotNode)
		assert.True(t, ok)
	})
}

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		line       string
		ignoreCase bool
		want       bool
	}{
		{"keyword present", "Linux", "Jun 15 Linux version 2.6.5", false, true},
		{"keyword absent", "Linux", "Jun 15 kernel panic", false, false},
		{"case-sensitive miss", "linux", "Jun 15 Linux version", false, false},
		{"case-insensitive hit", "linux", "Jun 15 Linux version", true, true},
		{"and both present", "Linux && version", "Linux version 2.6.5", false, true},
		{"and one missing", "Linux && panic", "Linux version 2.6.5", false, false},
		{"or either present", "panic || version", "Linux version 2.6.5", false, true},
		{"or both missing", "panic || oops", "Linux version 2.6.5", false, false},
		{"not absent keyword", "!panic", "Linux version 2.6.5", false, true},
		{"not present keyword", "!Linux", "Linux version 2.6.5", false, false},
		{"precedence a or b-and-c", "panic || Linux && version", "Linux version 2.6.5", false, true},
		{"precedence not grouped left", "version || Linux && panic", "Linux version 2.6.5", false, true},
		{"parens override precedence", "(panic || Linux) && version", "Linux version 2.6.5", false, true},
		{"parens force false", "(panic || oops) && version", "Linux version 2.6.5", false, false},
		{"word operators", "Linux AND NOT panic", "Linux version 2.6.5", false, true},
		{"double negation", "!!Linux", "Linux version 2.6.5", false, true},
		{"nested parens", "((Linux))", "Linux version 2.6.5", false, true},
		{"and not", "Linux && !8", "Linux version 2.6.5", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.Evaluate(tt.line, tt.ignoreCase))
		})
	}
}

func TestParseEquivalences(t *testing.T) {
	lines := []string{
		"Jun 15 04:06:18 combo sshd(pam_unix)[20892]: check pass; user unknown",
		"Linux version 2.6.5-1.358",
		"",
		"UPPER lower MiXeD",
	}

	equivalent := []struct {
		name string
		a, b string
	}{
		{"parenthesized keyword", "(A)", "A"},
		{"double negation", "!!user", "user"},
		{"word and symbol operators", "Linux AND user", "Linux && user"},
		{"redundant outer parens", "(Linux || user)", "Linux || user"},
	}

	for _, tt := range equivalent {
		t.Run(tt.name, func(t *testing.T) {
			na, err := Parse(tt.a)
			require.NoError(t, err)
			nb, err := Parse(tt.b)
			require.NoError(t, err)

			for _, line := range lines {
				for _, ic := range []bool{false, true} {
					assert.Equal(t, nb.Evaluate(line, ic), na.Evaluate(line, ic),
						"line=%q ignoreCase=%v", line, ic)
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		msg  string
	}{
		{"empty expression", "", "unexpected end of expression"},
		{"whitespace only", "   ", "unexpected end of expression"},
		{"unbalanced paren", "(A", "expected ')'"},
		{"bare close paren", ")", "unexpected end of expression"},
		{"close paren at primary", "A && )", "unexpected end of expression"},
		{"trailing operator", "A &&", "unexpected end of expression"},
		{"trailing not", "A && !", "unexpected end of expression"},
		{"adjacent operators", "A && && B", `unexpected token "&&"`},
		{"leading or", "|| A", `unexpected token "||"`},
		{"trailing keyword", "A B", `unexpected token "B" after expression`},
		{"trailing close paren", "A)", `unexpected token ")" after expression`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.expr)
			require.Error(t, err)
			assert.Nil(t, node)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.expr, perr.Expr)
			assert.Contains(t, perr.Msg, tt.msg)
		})
	}
}
