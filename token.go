// Package proplog implements a single-pass parser and evaluator for
// propositional logic formulas.
package proplog

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/hneemann/iterator"
)

type TokenType int

const (
	tTrue TokenType = iota
	tFalse
	tAnd
	tOr
	tImplies
	tNot
	tOpen
	tClose
	tTerm
	tEof
)

func (t TokenType) String() string {
	switch t {
	case tTrue:
		return "'T'"
	case tFalse:
		return "'F'"
	case tAnd:
		return "'^'"
	case tOr:
		return "'v'"
	case tImplies:
		return "'->'"
	case tNot:
		return "'~'"
	case tOpen:
		return "'('"
	case tClose:
		return "')'"
	case tTerm:
		return "'.'"
	case tEof:
		return "end of input"
	}
	return "invalid"
}

const (
	EOF rune = 0
)

// Token is one terminal symbol of a formula. The image is the matched
// source text, pos its rune offset; both are used only in diagnostics.
type Token struct {
	typ   TokenType
	image string
	pos   int
}

func (t Token) String() string {
	if t.typ == tEof {
		return "end of input"
	}
	return fmt.Sprintf("'%v' [%v]", t.image, t.pos)
}

// Lexer converts the input text to tokens. Tokens are created on
// demand, one call to Next creates one token. The Lexer owns the
// cursor into the text and the cached current character.
type Lexer struct {
	str    string
	off    int
	pos    int
	isLast bool
	last   rune
	width  int
}

// NewLexer creates a Lexer reading the given text.
func NewLexer(text string) *Lexer {
	return &Lexer{str: text}
}

// Next returns the next token. After the end of the text is reached
// every further call returns the end token. A character outside the
// formula alphabet yields a *LexicalError.
func (l *Lexer) Next() (Token, error) {
	for {
		switch c := l.peek(); c {
		case ' ', '\t', '\r', '\n':
			l.consume()
		case EOF:
			return Token{tEof, "EOF", l.pos}, nil
		case '(':
			return l.simple(tOpen), nil
		case ')':
			return l.simple(tClose), nil
		case '~':
			return l.simple(tNot), nil
		case '^':
			return l.simple(tAnd), nil
		case 'v':
			return l.simple(tOr), nil
		case 'T':
			return l.simple(tTrue), nil
		case 'F':
			return l.simple(tFalse), nil
		case '.':
			return l.simple(tTerm), nil
		case '-':
			pos := l.pos
			l.consume()
			if l.peek() != '>' {
				return Token{}, &LexicalError{Pos: pos, Found: "-"}
			}
			l.consume()
			return Token{tImplies, "->", pos}, nil
		default:
			if unicode.IsSpace(c) {
				l.consume()
				continue
			}
			return Token{}, &LexicalError{Pos: l.pos, Found: string(c)}
		}
	}
}

// Tokens returns the remaining tokens as a lazy iterator. The sequence
// ends after the end token, or early at the first lexical error; use
// Next to obtain the error itself.
func (l *Lexer) Tokens() iterator.Iterator[Token] {
	return func(yield func(Token) bool) bool {
		for {
			tok, err := l.Next()
			if err != nil {
				return false
			}
			if !yield(tok) {
				return false
			}
			if tok.typ == tEof {
				return true
			}
		}
	}
}

func (l *Lexer) simple(typ TokenType) Token {
	pos := l.pos
	c := l.peek()
	l.consume()
	return Token{typ, string(c), pos}
}

func (l *Lexer) peek() rune {
	if l.isLast {
		return l.last
	}
	if l.off >= len(l.str) {
		l.last = EOF
		l.width = 0
	} else {
		l.last, l.width = utf8.DecodeRuneInString(l.str[l.off:])
	}
	l.isLast = true
	return l.last
}

func (l *Lexer) consume() {
	if !l.isLast {
		l.peek()
	}
	if l.last != EOF {
		l.off += l.width
		l.pos++
	}
	l.isLast = false
}
