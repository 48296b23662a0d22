package matcher

import (
	"strings"

	"logsift/internal/expr"
)

type compiledExpression struct {
	source string
	tree   expr.Node
}

// ExpressionMatcher matches lines against one or more boolean keyword
// expressions. A line matches when any expression in the list evaluates true,
// so the list itself carries OR semantics on top of the boolean logic inside
// each expression.
type ExpressionMatcher struct {
	exprs      []compiledExpression
	ignoreCase bool
}

// NewExpressionMatcher compiles every expression up front. A single malformed
// expression fails the whole construction with an expr.ParseError; silently
// dropping one would silently change what the OR'd list selects.
func NewExpressionMatcher(expressions []string, ignoreCase bool) (*ExpressionMatcher, error) {
	compiled := make([]compiledExpression, 0, len(expressions))
	for _, source := range expressions {
		tree, err := expr.Parse(source)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledExpression{source: source, tree: tree})
	}
	return &ExpressionMatcher{exprs: compiled, ignoreCase: ignoreCase}, nil
}

// MatchLine evaluates the compiled trees in list order and returns the
// trimmed line as soon as one evaluates true.
func (m *ExpressionMatcher) MatchLine(line string) (string, bool) {
	trimmed := strings.TrimRight(line, "\r\n")
	for _, ce := range m.exprs {
		if ce.tree.Evaluate(trimmed, m.ignoreCase) {
			return trimmed, true
		}
	}
	return "", false
}

// Description lists the source expressions.
func (m *ExpressionMatcher) Description() string {
	return strings.Join(m.Patterns(), ", ")
}

// Patterns returns the original expression strings in order.
func (m *ExpressionMatcher) Patterns() []string {
	sources := make([]string, len(m.exprs))
	for i, ce := range m.exprs {
		sources[i] = ce.source
	}
	return sources
}
