package decision

import "fmt"

// parser builds the expression tree from the lexer's token list.
// Precedence from lowest to highest binding: ||, &&, !; parentheses group.
type parser struct {
	tokens  []token
	current int
}

func (p *parser) peek() token {
	return p.tokens[p.current]
}

func (p *parser) next() token {
	t := p.tokens[p.current]
	if t.typ != tokenEOF {
		p.current++
	}
	return t
}

func (p *parser) parseOr() (node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == tokenOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == tokenAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andNode{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.peek().typ == tokenNot {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notNode{x: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	switch t := p.next(); t.typ {
	case tokenVar:
		return varNode(t.text), nil
	case tokenLParen:
		x, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.typ != tokenRParen {
			return nil, &SyntaxError{Pos: closing.pos, Msg: "missing closing parenthesis"}
		}
		return x, nil
	case tokenRParen:
		return nil, &SyntaxError{Pos: t.pos, Msg: "unexpected ')'"}
	case tokenEOF:
		return nil, &SyntaxError{Pos: t.pos, Msg: "missing operand at end of expression"}
	default:
		return nil, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("missing operand before %q", t.text)}
	}
}
