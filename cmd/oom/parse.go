package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todmy/oom-trainer/internal/number"
	"github.com/todmy/oom-trainer/internal/parser"
	"github.com/todmy/oom-trainer/internal/scoring"
)

var flagLiteralInts bool

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse an answer into canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var scoreCmd = &cobra.Command{
	Use:   "score <true> <estimate>",
	Short: "Score an estimate against a true value",
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

func init() {
	parseCmd.Flags().BoolVar(&flagLiteralInts, "literal-ints", false, "read a bare integer as a literal value instead of an exponent")
}

func runParse(cmd *cobra.Command, args []string) error {
	opts := parser.DefaultOptions()
	opts.BareExponent = !flagLiteralInts

	n, err := parser.ParseWithOptions(strings.Join(args, " "), opts)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %s (mantissa %g, exponent %d)\n", number.Words(n), number.Scientific(n), n.Mantissa, n.Exponent)
	return nil
}

func runScore(cmd *cobra.Command, args []string) error {
	trueVal, err := parser.Parse(args[0])
	if err != nil {
		return fmt.Errorf("true value: %w", err)
	}
	userVal, err := parser.Parse(args[1])
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	result, err := scoring.Score(trueVal, userVal, scoring.DefaultConfig())
	if err != nil {
		return err
	}

	fmt.Printf("%s  distance %.3f OOM  %d points\n", result.Tier.Label(), result.OOMDistance, result.Points)
	if result.MantissaError != nil {
		fmt.Printf("mantissa error %.1f%%\n", *result.MantissaError*100)
	}
	return nil
}
