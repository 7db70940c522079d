package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todmy/oom-trainer/internal/generator"
	"github.com/todmy/oom-trainer/internal/number"
	"github.com/todmy/oom-trainer/internal/parser"
	"github.com/todmy/oom-trainer/internal/scoring"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the day's session interactively",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	date := problemDate()
	problems, err := generator.Daily(date, flagCount, generator.DefaultConfig())
	if err != nil {
		return fmt.Errorf("generate problems: %w", err)
	}
	scoringCfg := scoring.DefaultConfig()

	fmt.Printf("OOM Trainer — %s\n", date)
	fmt.Println("Estimate each result. Formats: 400B, 400 billion, 4e11, 4x10^11")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	results := make([]scoring.Result, 0, len(problems))
	for i, p := range problems {
		fmt.Printf("Problem %d of %d\n", i+1, len(problems))
		fmt.Printf("  %s %s %s = ?\n", number.Words(p.Left), p.Operation.Symbol(), number.Words(p.Right))

		answer, ok := readAnswer(scanner)
		if !ok {
			break
		}

		result, err := scoring.Score(p.TrueValue, answer, scoringCfg)
		if err != nil {
			return fmt.Errorf("score answer: %w", err)
		}
		results = append(results, result)

		fmt.Printf("  %s  you: %s, answer: %s", result.Tier.Label(), number.Words(answer), number.Words(p.TrueValue))
		switch result.Direction {
		case scoring.DirectionHigh:
			fmt.Printf(" (%.1f OOM too high)", result.OOMDistance)
		case scoring.DirectionLow:
			fmt.Printf(" (%.1f OOM too low)", result.OOMDistance)
		}
		fmt.Printf("  +%d points\n\n", result.Points)
	}

	if len(results) == 0 {
		return nil
	}

	summary := scoring.Summarize(results)
	fmt.Println("Session complete")
	fmt.Printf("  Score: %d / %d\n", summary.TotalPoints, summary.MaxPoints)
	fmt.Printf("  Exact: %d  Close: %d  Off: %d\n", summary.ExactCount, summary.CloseCount, summary.FarCount)
	fmt.Printf("  Mean miss: %.2f OOM, median %.2f OOM\n", summary.MeanDistance, summary.MedianDistance)
	fmt.Println("New problems tomorrow!")
	return nil
}

// readAnswer prompts until the input parses, explaining each failure. Returns
// false when stdin is exhausted.
func readAnswer(scanner *bufio.Scanner) (number.Number, bool) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return number.Number{}, false
		}
		text := strings.TrimSpace(scanner.Text())

		answer, err := parser.Parse(text)
		if err == nil {
			return answer, true
		}
		fmt.Printf("  %s\n", parseHint(err))
	}
}

func parseHint(err error) string {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return err.Error()
	}
	switch {
	case errors.Is(pe.Err, parser.ErrEmptyInput):
		return "Type an estimate, e.g. 400B or 4e11."
	case errors.Is(pe.Err, parser.ErrUnrecognizedUnit):
		return "Unknown unit — use thousand/K, million/M, billion/B or trillion/T."
	case errors.Is(pe.Err, parser.ErrMalformedExponent):
		return "The exponent must be a whole number, e.g. 4e11."
	case errors.Is(pe.Err, parser.ErrMalformedMantissa):
		return "The number part must be a positive decimal, e.g. 8.3 million."
	default:
		return "Could not read that — try 400B, 400 billion, 4e11 or 4x10^11."
	}
}
