// Command lazyseq is a small playground for the lazy package: it builds a
// sequence, optionally taps every produced element through Spy into a
// structured logger, and prints the first items.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		count int
		trace bool
	)

	cmd := &cobra.Command{
		Use:           "lazyseq",
		Short:         "Inspect lazy sequences from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().IntVarP(&count, "count", "n", 10, "How many items to consume")
	cmd.PersistentFlags().BoolVar(&trace, "trace", false, "Log every produced element")

	cmd.AddCommand(
		newRangeCmd(&count, &trace),
		newPalindromesCmd(&count, &trace),
		newFibCmd(&count, &trace),
	)

	return cmd
}

func newLogger(trace bool) *slog.Logger {
	level := slog.LevelInfo
	if trace {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}
