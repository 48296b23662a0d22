package expr

import (
	"fmt"
)

// ParseError describes a malformed boolean expression. It is raised while
// compiling an expression, never during per-line evaluation.
type ParseError struct {
	Expr string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid expression %q: %s", e.Expr, e.Msg)
}

type parser struct {
	expr string
	toks []Token
	pos  int
}

// Parse compiles a boolean expression into an evaluable tree.
// Grammar, lowest to highest binding:
//
//	Or      := And ( '||' And )*
//	And     := Not ( '&&' Not )*
//	Not     := '!' Not | Primary
//	Primary := '(' Or ')' | KEYWORD
//
// `||` and `&&` are left-associative; `!` stacks. An empty expression,
// unbalanced parens, a trailing operator, or two operators in a row all fail
// with a ParseError.
func Parse(input string) (Node, error) {
	p := &parser{expr: input, toks: Tokenize(input)}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t, ok := p.peek(); ok {
		return nil, p.errorf("unexpected token %q after expression", t.Text)
	}
	return node, nil
}

func (p *parser) parseOr() (Node, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(TokenOr) {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = &OrNode{Left: node, Right: right}
	}
	return node, nil
}

func (p *parser) parseAnd() (Node, error) {
	node, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match(TokenAnd) {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		node = &AndNode{Left: node, Right: right}
	}
	return node, nil
}

func (p *parser) parseNot() (Node, error) {
	if p.match(TokenNot) {
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &NotNode{Child: child}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	if p.match(TokenLParen) {
		node, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.match(TokenRParen) {
			return nil, p.errorf("expected ')'")
		}
		return node, nil
	}

	t, ok := p.peek()
	if !ok || t.Type == TokenRParen {
		return nil, p.errorf("unexpected end of expression")
	}
	if t.Type != TokenKeyword {
		// Two operators in a row, e.g. "a && && b".
		return nil, p.errorf("unexpected token %q", t.Text)
	}
	p.pos++
	return &KeywordNode{Keyword: t.Text}, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) match(typ TokenType) bool {
	if p.pos < len(p.toks) && p.toks[p.pos].Type == typ {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Expr: p.expr, Msg: fmt.Sprintf(format, args...)}
}
