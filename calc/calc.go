// Package calc implements a small evaluator for integer arithmetic
// expressions with +, -, *, / and parentheses. It follows the same
// single pass design as the boolean evaluator, but the values are
// folded directly instead of going through an evaluation stack.
package calc

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/hneemann/proplog"
)

type tokenType int

const (
	tNumber tokenType = iota
	tPlus
	tMinus
	tMul
	tDiv
	tOpen
	tClose
	tEof
)

type token struct {
	typ   tokenType
	image string
	pos   int
}

const eof rune = 0

type lexer struct {
	str    string
	off    int
	pos    int
	isLast bool
	last   rune
	width  int
}

func newLexer(text string) *lexer {
	return &lexer{str: text}
}

func (l *lexer) next() (token, error) {
	for {
		switch c := l.peek(); c {
		case ' ', '\t', '\r', '\n':
			l.consume()
		case eof:
			return token{tEof, "EOF", l.pos}, nil
		case '+':
			return l.simple(tPlus), nil
		case '-':
			return l.simple(tMinus), nil
		case '*':
			return l.simple(tMul), nil
		case '/':
			return l.simple(tDiv), nil
		case '(':
			return l.simple(tOpen), nil
		case ')':
			return l.simple(tClose), nil
		default:
			if c >= '0' && c <= '9' {
				return l.number(), nil
			}
			return token{}, &proplog.LexicalError{Pos: l.pos, Found: string(c)}
		}
	}
}

// number reads a run of digits as one integer literal.
func (l *lexer) number() token {
	pos := l.pos
	image := ""
	for c := l.peek(); c >= '0' && c <= '9'; c = l.peek() {
		image += string(c)
		l.consume()
	}
	return token{tNumber, image, pos}
}

func (l *lexer) simple(typ tokenType) token {
	pos := l.pos
	c := l.peek()
	l.consume()
	return token{typ, string(c), pos}
}

func (l *lexer) peek() rune {
	if l.isLast {
		return l.last
	}
	if l.off >= len(l.str) {
		l.last = eof
		l.width = 0
	} else {
		l.last, l.width = utf8.DecodeRuneInString(l.str[l.off:])
	}
	l.isLast = true
	return l.last
}

func (l *lexer) consume() {
	if !l.isLast {
		l.peek()
	}
	if l.last != eof {
		l.off += l.width
		l.pos++
	}
	l.isLast = false
}

// Evaluator parses one arithmetic expression and computes its value
// while parsing.
//
// The grammar:
//
//	Expr   := Term (('+'|'-') Term)*
//	Term   := Factor (('*'|'/') Factor)*
//	Factor := number | '(' Expr ')'
type Evaluator struct {
	lex     *lexer
	current token
}

// NewEvaluator creates an Evaluator for the given expression.
func NewEvaluator(text string) *Evaluator {
	return &Evaluator{lex: newLexer(text)}
}

// Evaluate parses the expression str and returns its value.
func Evaluate(str string) (int, error) {
	return NewEvaluator(str).Evaluate()
}

// Evaluate consumes the whole input and returns the value of the
// expression. Unlike a formula, an expression has no terminator; it
// simply ends with the input.
func (e *Evaluator) Evaluate() (int, error) {
	if err := e.advance(); err != nil {
		return 0, err
	}
	v, err := e.expr()
	if err != nil {
		return 0, err
	}
	if e.current.typ != tEof {
		return 0, e.unexpected("end of input")
	}
	return v, nil
}

func (e *Evaluator) expr() (int, error) {
	result, err := e.term()
	if err != nil {
		return 0, err
	}
	for e.current.typ == tPlus || e.current.typ == tMinus {
		typ := e.current.typ
		if err := e.advance(); err != nil {
			return 0, err
		}
		v, err := e.term()
		if err != nil {
			return 0, err
		}
		if typ == tPlus {
			result += v
		} else {
			result -= v
		}
	}
	return result, nil
}

func (e *Evaluator) term() (int, error) {
	result, err := e.factor()
	if err != nil {
		return 0, err
	}
	for e.current.typ == tMul || e.current.typ == tDiv {
		op := e.current
		if err := e.advance(); err != nil {
			return 0, err
		}
		v, err := e.factor()
		if err != nil {
			return 0, err
		}
		if op.typ == tMul {
			result *= v
		} else {
			if v == 0 {
				return 0, fmt.Errorf("division by zero at position %d", op.pos)
			}
			result /= v
		}
	}
	return result, nil
}

func (e *Evaluator) factor() (int, error) {
	switch e.current.typ {
	case tNumber:
		v, err := strconv.Atoi(e.current.image)
		if err != nil {
			return 0, err
		}
		return v, e.advance()
	case tOpen:
		if err := e.advance(); err != nil {
			return 0, err
		}
		v, err := e.expr()
		if err != nil {
			return 0, err
		}
		if e.current.typ != tClose {
			return 0, e.unexpected("')'")
		}
		return v, e.advance()
	default:
		return 0, e.unexpected("a number or '('")
	}
}

func (e *Evaluator) advance() error {
	t, err := e.lex.next()
	if err != nil {
		return err
	}
	e.current = t
	return nil
}

func (e *Evaluator) unexpected(expected string) error {
	return &proplog.SyntaxError{Pos: e.current.pos, Expected: expected, Found: e.current.image}
}
