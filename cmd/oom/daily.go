package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todmy/oom-trainer/internal/generator"
	"github.com/todmy/oom-trainer/internal/number"
)

var flagReveal bool

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print the day's problems",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().BoolVar(&flagReveal, "reveal", false, "show the true values")
}

func runDaily(cmd *cobra.Command, args []string) error {
	date := problemDate()
	problems, err := generator.Daily(date, flagCount, generator.DefaultConfig())
	if err != nil {
		return fmt.Errorf("generate problems: %w", err)
	}

	fmt.Printf("Problems for %s\n\n", date)
	for i, p := range problems {
		fmt.Printf("%d. %s %s %s = ?\n", i+1, number.Words(p.Left), p.Operation.Symbol(), number.Words(p.Right))
		if flagReveal {
			fmt.Printf("   = %s (%s)\n", number.Words(p.TrueValue), number.Scientific(p.TrueValue))
		}
	}
	return nil
}
