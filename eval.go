package proplog

import (
	"github.com/hneemann/proplog/stack"
)

// Evaluator parses a single formula and reduces it to a boolean value
// while parsing. There is no intermediate syntax tree; each grammar
// rule performs its semantic action on the evaluation stack the moment
// it completes, so when a rule for an operator finishes, its operands
// are replaced by exactly one result.
//
// The grammar, from weakest to tightest binding:
//
//	Statement := ImplyExpr '.'
//	ImplyExpr := OrExpr ('->' OrExpr)*    right associative
//	OrExpr    := AndExpr ('v' AndExpr)*   left associative
//	AndExpr   := Literal ('^' Literal)*   left associative
//	Literal   := '~' Literal | Atom
//	Atom      := 'T' | 'F' | '(' ImplyExpr ')'
type Evaluator struct {
	lex     *Lexer
	current Token
	stack   stack.Stack[bool]
}

// NewEvaluator creates an Evaluator bound to the given Lexer. An
// Evaluator is good for a single call to Evaluate; every formula gets
// a fresh Lexer and Evaluator.
func NewEvaluator(lex *Lexer) *Evaluator {
	return &Evaluator{lex: lex}
}

// Evaluate parses the formula str and returns its boolean value.
func Evaluate(str string) (bool, error) {
	return NewEvaluator(NewLexer(str)).Evaluate()
}

// Evaluate consumes the whole input and returns the value of the
// formula. It fails with a *LexicalError or a *SyntaxError if the
// input is not a well formed formula followed by '.'.
func (e *Evaluator) Evaluate() (bool, error) {
	if err := e.advance(); err != nil {
		return false, err
	}
	if err := e.statement(); err != nil {
		return false, err
	}
	return e.stack.Pop(), nil
}

// statement requires the terminator after the expression and the end
// of the input after the terminator; trailing input is a syntax error.
func (e *Evaluator) statement() error {
	if err := e.implyExpr(); err != nil {
		return err
	}
	if e.current.typ != tTerm {
		return e.unexpected("'.'")
	}
	if err := e.eat(tTerm); err != nil {
		return err
	}
	if e.current.typ != tEof {
		return e.unexpected("end of input")
	}
	return nil
}

func (e *Evaluator) implyExpr() error {
	if err := e.orExpr(); err != nil {
		return err
	}
	return e.implyTail()
}

// implyTail folds a chain of '->' operators. The recursion descends
// before the operands are combined, which makes implication right
// associative: T->F->T is T->(F->T).
func (e *Evaluator) implyTail() error {
	switch e.current.typ {
	case tImplies:
		if err := e.eat(tImplies); err != nil {
			return err
		}
		if err := e.orExpr(); err != nil {
			return err
		}
		if err := e.implyTail(); err != nil {
			return err
		}
		b := e.stack.Pop()
		a := e.stack.Pop()
		e.stack.Push(!a || b)
		return nil
	case tTerm, tClose, tEof:
		return nil
	default:
		return e.unexpected("'->', '.' or ')'")
	}
}

func (e *Evaluator) orExpr() error {
	if err := e.andExpr(); err != nil {
		return err
	}
	return e.orTail()
}

// orTail folds a chain of 'v' operators left to right: each operand is
// combined with the result so far before the next one is parsed.
func (e *Evaluator) orTail() error {
	for {
		switch e.current.typ {
		case tOr:
			if err := e.eat(tOr); err != nil {
				return err
			}
			if err := e.andExpr(); err != nil {
				return err
			}
			b := e.stack.Pop()
			a := e.stack.Pop()
			e.stack.Push(a || b)
		case tImplies, tTerm, tClose, tEof:
			return nil
		default:
			return e.unexpected("'v', '->', '.' or ')'")
		}
	}
}

func (e *Evaluator) andExpr() error {
	if err := e.literal(); err != nil {
		return err
	}
	return e.andTail()
}

func (e *Evaluator) andTail() error {
	for {
		switch e.current.typ {
		case tAnd:
			if err := e.eat(tAnd); err != nil {
				return err
			}
			if err := e.literal(); err != nil {
				return err
			}
			b := e.stack.Pop()
			a := e.stack.Pop()
			e.stack.Push(a && b)
		case tOr, tImplies, tTerm, tClose, tEof:
			return nil
		default:
			return e.unexpected("'^', 'v', '->', '.' or ')'")
		}
	}
}

func (e *Evaluator) literal() error {
	switch e.current.typ {
	case tNot:
		if err := e.eat(tNot); err != nil {
			return err
		}
		if err := e.literal(); err != nil {
			return err
		}
		e.stack.Push(!e.stack.Pop())
		return nil
	case tTrue, tFalse, tOpen:
		return e.atom()
	default:
		return e.unexpected("'~', 'T', 'F' or '('")
	}
}

func (e *Evaluator) atom() error {
	switch e.current.typ {
	case tTrue:
		e.stack.Push(true)
		return e.eat(tTrue)
	case tFalse:
		e.stack.Push(false)
		return e.eat(tFalse)
	case tOpen:
		if err := e.eat(tOpen); err != nil {
			return err
		}
		if err := e.implyExpr(); err != nil {
			return err
		}
		if e.current.typ != tClose {
			return e.unexpected("')'")
		}
		return e.eat(tClose)
	default:
		return e.unexpected("'T', 'F' or '('")
	}
}

// eat consumes the current token after checking its type and pulls the
// next one from the lexer. The rules above dispatch on the current
// token before calling eat, so a mismatch here means the dispatch and
// the grammar got out of sync.
func (e *Evaluator) eat(typ TokenType) error {
	if e.current.typ != typ {
		return e.unexpected(typ.String())
	}
	return e.advance()
}

func (e *Evaluator) advance() error {
	t, err := e.lex.Next()
	if err != nil {
		return err
	}
	e.current = t
	return nil
}

func (e *Evaluator) unexpected(expected string) error {
	return &SyntaxError{Pos: e.current.pos, Expected: expected, Found: e.current.image}
}
