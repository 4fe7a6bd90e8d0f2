package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmingruby/lazyseq/lazy"
	"github.com/spf13/cobra"
)

func newRangeCmd(count *int, trace *bool) *cobra.Command {
	var (
		min  int
		max  int
		step int
	)

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Arithmetic progression; omit --max for an unbounded one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if step == 0 {
				return fmt.Errorf("--step must not be zero")
			}
			var seq *lazy.Sequence[int]
			if cmd.Flags().Changed("max") {
				seq = lazy.RangeStep(min, max, step)
			} else {
				seq = lazy.Iterate(min, func(v int) int { return v + step })
			}
			return consume(seq, *count, *trace)
		},
	}

	cmd.Flags().IntVar(&min, "min", 0, "First value")
	cmd.Flags().IntVar(&max, "max", 0, "Last value (inclusive)")
	cmd.Flags().IntVar(&step, "step", 1, "Distance between values")

	return cmd
}

func newPalindromesCmd(count *int, trace *bool) *cobra.Command {
	var from int

	cmd := &cobra.Command{
		Use:   "palindromes",
		Short: "Palindromic numbers, an unbounded non-arithmetic progression",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := from
			if !isPalindrome(start) {
				start = nextPalindrome(start)
			}
			return consume(lazy.Iterate(start, nextPalindrome), *count, *trace)
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "Lower bound of the progression")

	return cmd
}

func newFibCmd(count *int, trace *bool) *cobra.Command {
	type fib struct{ a, b int }

	return &cobra.Command{
		Use:   "fib",
		Short: "Fibonacci numbers from a two-field generator state",
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := lazy.New(func(s fib) (fib, []int) {
				return fib{a: s.b, b: s.a + s.b}, []int{s.a}
			}, fib{a: 0, b: 1})
			return consume(seq, *count, *trace)
		},
	}
}

// consume prints up to count items, tracing each produced element when asked.
// Unbounded sequences are safe here because consumption goes through Next,
// never All.
func consume(seq *lazy.Sequence[int], count int, trace bool) error {
	if count < 0 {
		return fmt.Errorf("--count must not be negative")
	}

	log := newLogger(trace)
	if trace {
		seq = seq.Spy(func(v int) {
			log.Debug("produced", slog.Int("value", v))
		})
	}

	items := seq.Next(count)
	fmt.Println(items)
	log.Info("consumed",
		slog.Int("requested", count),
		slog.Int("returned", len(items)),
		slog.Bool("exhausted", seq.IsDone()),
	)
	return nil
}

func isPalindrome(n int) bool {
	s := strconv.Itoa(n)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func nextPalindrome(prev int) int {
	n := prev + 1
	for !isPalindrome(n) {
		n++
	}
	return n
}
