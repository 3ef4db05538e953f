package repl

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/hneemann/proplog"
	"github.com/stretchr/testify/assert"
)

func TestRunEvaluatesLines(t *testing.T) {
	in := strings.NewReader("T ^ F.\nT &\nT v F.\n")
	var out bytes.Buffer
	r := REPL{
		Prompt: "> ",
		Eval: func(line string) (string, error) {
			v, err := proplog.Evaluate(line)
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(v), nil
		},
	}
	err := r.Run(in, &out)
	assert.NoError(t, err)
	assert.Equal(t, "> false\n"+
		"> invalid character \"&\" at position 2\n"+
		"> true\n"+
		"> \n", out.String())
}

func TestRunSkipsEmptyLines(t *testing.T) {
	in := strings.NewReader("\n   \nT.\n")
	var out bytes.Buffer
	r := REPL{
		Prompt: "? ",
		Eval:   func(line string) (string, error) { return line, nil },
	}
	err := r.Run(in, &out)
	assert.NoError(t, err)
	assert.Equal(t, "? ? ? T.\n? \n", out.String())
}

func TestRunDecorates(t *testing.T) {
	in := strings.NewReader("ok\nfail\n")
	var out bytes.Buffer
	r := REPL{
		Eval: func(line string) (string, error) {
			if line == "fail" {
				return "", fmt.Errorf("broken")
			}
			return line, nil
		},
		Result: func(s string) string { return "[" + s + "]" },
		Error:  func(s string) string { return "!" + s },
	}
	err := r.Run(in, &out)
	assert.NoError(t, err)
	assert.Equal(t, "[ok]\n!broken\n\n", out.String())
}
