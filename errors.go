package proplog

import "fmt"

// LexicalError is returned if the input contains a character that is
// not part of the formula alphabet, or a '-' that is not followed by
// '>'.
type LexicalError struct {
	Pos   int
	Found string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Found, e.Pos)
}

// SyntaxError is returned if a token is grammatically invalid at its
// position. Expected names the alternatives the active grammar rule
// accepts, Found the token actually encountered.
type SyntaxError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid syntax: expected %s, found '%s' at position %d", e.Expected, e.Found, e.Pos)
}
