package decision

import "fmt"

type tokenType int

const (
	tokenVar tokenType = iota
	tokenNot
	tokenAnd
	tokenOr
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	typ  tokenType
	text string
	pos  int
}

// lexer scans decision text and produces the token list consumed by the
// parser. Variables are single lowercase ASCII letters, operators are
// !, && and ||, whitespace is insignificant.
type lexer struct {
	input    string
	position int
	tokens   []token
}

func (l *lexer) add(typ tokenType, text string, pos int) {
	l.tokens = append(l.tokens, token{typ: typ, text: text, pos: pos})
}

func (l *lexer) tokenize() ([]token, error) {
	for l.position < len(l.input) {
		pos := l.position
		switch c := l.input[l.position]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.position++
		case c == '(':
			l.add(tokenLParen, "(", pos)
			l.position++
		case c == ')':
			l.add(tokenRParen, ")", pos)
			l.position++
		case c == '!':
			l.add(tokenNot, "!", pos)
			l.position++
		case c == '&':
			if l.position+1 >= len(l.input) || l.input[l.position+1] != '&' {
				return nil, &SyntaxError{Pos: pos, Msg: "single '&', expected '&&'"}
			}
			l.add(tokenAnd, "&&", pos)
			l.position += 2
		case c == '|':
			if l.position+1 >= len(l.input) || l.input[l.position+1] != '|' {
				return nil, &SyntaxError{Pos: pos, Msg: "single '|', expected '||'"}
			}
			l.add(tokenOr, "||", pos)
			l.position += 2
		case c >= 'a' && c <= 'z':
			if l.position+1 < len(l.input) {
				if next := l.input[l.position+1]; next >= 'a' && next <= 'z' {
					return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("identifier starting with %q has more than one letter, variables are single lowercase letters", c)}
				}
			}
			l.add(tokenVar, string(c), pos)
			l.position++
		default:
			return nil, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unsupported character %q", c)}
		}
	}
	l.add(tokenEOF, "", l.position)
	return l.tokens, nil
}
