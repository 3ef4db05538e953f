package proplog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		exp    string
		result bool
	}{
		{"T.", true},
		{"F.", false},
		{"~T.", false},
		{"~~T.", true},
		{"~ ~ T.", true},
		{"T ^ T.", true},
		{"T ^ F.", false},
		{"T ^ F ^ T.", false},
		{"T v F.", true},
		{"F v F.", false},
		// '^' binds tighter than 'v'
		{"T v F ^ F.", true},
		{"(T v F) ^ F.", false},
		{"T^F v T^T.", true},
		{"T -> F.", false},
		{"F -> T.", true},
		// '->' is right associative: F -> (F -> F)
		{"F -> F -> F.", true},
		{"(F -> F) -> F.", false},
		{"T -> T -> F.", false},
		// 'v' binds tighter than '->'
		{"F v T -> F.", false},
		{"(T ^ F) v T.", true},
		{"~(T ^ F).", true},
		{"~F ^ ~F.", true},
		{"((T)).", true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.exp, func(t *testing.T) {
			r, err := Evaluate(test.exp)
			assert.NoError(t, err)
			assert.Equal(t, test.result, r)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		exp     string
		lexical bool
	}{
		{exp: "T", lexical: false},      // missing terminator
		{exp: "T. F", lexical: false},   // trailing input
		{exp: "T & F.", lexical: true},  // unknown symbol
		{exp: "T -F.", lexical: true},   // incomplete '->'
		{exp: "", lexical: false},
		{exp: ".", lexical: false},
		{exp: "T F.", lexical: false},
		{exp: "T ~ F.", lexical: false},
		{exp: "v T.", lexical: false},
		{exp: "T v.", lexical: false},
		{exp: "T ->.", lexical: false},
		{exp: "(T.", lexical: false},    // unclosed paren
		{exp: "T).", lexical: false},
		{exp: "().", lexical: false},
		{exp: "~.", lexical: false},
		{exp: "T. F.", lexical: false},  // one statement per input
	}

	for _, test := range tests {
		test := test
		t.Run(test.exp, func(t *testing.T) {
			_, err := Evaluate(test.exp)
			assert.Error(t, err)
			if test.lexical {
				var lexErr *LexicalError
				assert.True(t, errors.As(err, &lexErr), "want lexical error, got %v", err)
			} else {
				var synErr *SyntaxError
				assert.True(t, errors.As(err, &synErr), "want syntax error, got %v", err)
			}
		})
	}
}

func TestEvaluateErrorMessages(t *testing.T) {
	_, err := Evaluate("T & F.")
	assert.EqualError(t, err, `invalid character "&" at position 2`)

	_, err = Evaluate("T F.")
	assert.EqualError(t, err, `invalid syntax: expected '^', 'v', '->', '.' or ')', found 'F' at position 2`)

	_, err = Evaluate("T. F")
	assert.EqualError(t, err, `invalid syntax: expected end of input, found 'F' at position 3`)

	_, err = Evaluate("T")
	assert.EqualError(t, err, `invalid syntax: expected '.', found 'EOF' at position 1`)
}

// After a successful parse the stack held exactly the result and
// nothing else.
func TestEvaluatorStackBalance(t *testing.T) {
	e := NewEvaluator(NewLexer("~(T ^ F) v (F -> T)."))
	r, err := e.Evaluate()
	assert.NoError(t, err)
	assert.True(t, r)
	assert.Equal(t, 0, e.stack.Size())
}

// Parenthesization of an expression does not change its value.
func TestParenTransparent(t *testing.T) {
	pairs := [][2]string{
		{"(T ^ F) v T.", "T."},
		{"T v F ^ F.", "T v (F ^ F)."},
		{"F -> F -> F.", "F -> (F -> F)."},
		{"T ^ F ^ T.", "(T ^ F) ^ T."},
	}
	for _, p := range pairs {
		a, err := Evaluate(p[0])
		assert.NoError(t, err)
		b, err := Evaluate(p[1])
		assert.NoError(t, err)
		assert.Equal(t, a, b, "%s vs %s", p[0], p[1])
	}
}
