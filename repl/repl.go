// Package repl implements the interactive read loop that feeds single
// line inputs to an evaluator.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Func evaluates one line of input and returns the text to print.
type Func func(line string) (string, error)

// REPL reads lines from a source, evaluates each non empty line with a
// fresh call to Eval and prints the result or the error message. A
// failed line does not stop the loop; the end of the input does.
type REPL struct {
	// Prompt is written before every line is read.
	Prompt string
	// Eval evaluates one line.
	Eval Func
	// Result and Error decorate the output before it is printed.
	// Both may be nil.
	Result func(string) string
	Error  func(string) string
}

// Run processes in until the end of the input. It returns the error of
// the reader, never an evaluation error.
func (r *REPL) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, r.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if res, err := r.Eval(line); err != nil {
			fmt.Fprintln(out, decorate(r.Error, err.Error()))
		} else {
			fmt.Fprintln(out, decorate(r.Result, res))
		}
	}
}

func decorate(f func(string) string, s string) string {
	if f == nil {
		return s
	}
	return f(s)
}
