package cmd

import (
	"strconv"
	"strings"

	"github.com/hneemann/proplog/calc"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [expression]",
	Short: "Evaluate integer arithmetic expressions",
	Long: `calc evaluates integer arithmetic expressions with +, -, *, /
and parentheses.

With an argument the expression is evaluated once:
  proplog calc "7 + 3 * (10 / (12 / (3 + 1) - 1))"

Without arguments an interactive session is started.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	eval := func(line string) (string, error) {
		v, err := calc.Evaluate(line)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	}
	if len(args) > 0 {
		return evalOnce(strings.Join(args, " "), eval)
	}
	return interactive("calc", eval)
}
