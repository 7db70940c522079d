// Package main implements the oom command line trainer: daily order-of-
// magnitude estimation problems, played in the terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagDate  string
	flagCount int
)

var rootCmd = &cobra.Command{
	Use:   "oom",
	Short: "Order-of-magnitude estimation trainer",
	Long: `oom generates daily order-of-magnitude estimation problems and grades
your answers in log-space.

Answers are accepted in several formats:
  8.3 million    400B    4e11    4 x 10^11    400,000,000,000`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "problem date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().IntVar(&flagCount, "count", 5, "number of problems")

	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scoreCmd)
}

// problemDate resolves the --date flag, defaulting to today in UTC.
func problemDate() string {
	if flagDate != "" {
		return flagDate
	}
	return time.Now().UTC().Format("2006-01-02")
}
