package expr

import (
	"strings"
)

// Node is one node of a compiled expression tree. Trees are immutable after
// construction and hold no state, so a Node is safe to share and evaluate
// from multiple goroutines.
type Node interface {
	// Evaluate reports whether the line satisfies this subtree.
	Evaluate(line string, ignoreCase bool) bool
}

// KeywordNode matches lines containing the keyword as a substring.
type KeywordNode struct {
	Keyword string
}

func (n *KeywordNode) Evaluate(line string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.Contains(strings.ToLower(line), strings.ToLower(n.Keyword))
	}
	return strings.Contains(line, n.Keyword)
}

// AndNode matches when both children match.
type AndNode struct {
	Left, Right Node
}

func (n *AndNode) Evaluate(line string, ignoreCase bool) bool {
	return n.Left.Evaluate(line, ignoreCase) && n.Right.Evaluate(line, ignoreCase)
}

// OrNode matches when either child matches.
type OrNode struct {
	Left, Right Node
}

func (n *OrNode) Evaluate(line string, ignoreCase bool) bool {
	return n.Left.Evaluate(line, ignoreCase) || n.Right.Evaluate(line, ignoreCase)
}

// NotNode inverts its child.
type NotNode struct {
	Child Node
}

func (n *NotNode) Evaluate(line string, ignoreCase bool) bool {
	return !n.Child.Evaluate(line, ignoreCase)
}
