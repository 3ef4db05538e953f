package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hneemann/proplog"
	"github.com/hneemann/proplog/repl"
	"github.com/spf13/cobra"
)

var (
	styleResult = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	stylePrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
)

var rootCmd = &cobra.Command{
	Use:   "proplog [formula]",
	Short: "Evaluate propositional logic formulas",
	Long: `proplog evaluates propositional logic formulas.

A formula is built from the constants T and F, the operators ~ (not),
^ (and), v (or) and -> (implies), and parentheses. Every formula ends
with a '.'.

With an argument the formula is evaluated once:
  proplog "T ^ (F v ~F)."

Without arguments an interactive session is started; one formula per
line, end the session with Ctrl-D.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runLogic,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func runLogic(cmd *cobra.Command, args []string) error {
	eval := func(line string) (string, error) {
		v, err := proplog.Evaluate(line)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	}
	if len(args) > 0 {
		return evalOnce(strings.Join(args, " "), eval)
	}
	return interactive("logic", eval)
}

// evalOnce evaluates a single input and exits with an error on a
// malformed input.
func evalOnce(line string, eval repl.Func) error {
	res, err := eval(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		return err
	}
	fmt.Println(styleResult.Render(res))
	return nil
}

func interactive(name string, eval repl.Func) error {
	r := repl.REPL{
		Prompt: stylePrompt.Render(name+">") + " ",
		Eval:   eval,
		Result: styleResult.Render,
		Error:  styleError.Render,
	}
	return r.Run(os.Stdin, os.Stdout)
}
