package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dskit/ds/treeset"
)

func init() {
	rootCmd.AddCommand(newTreesetCmd())
}

func newTreesetCmd() *cobra.Command {
	var n int
	var seed int64
	cmd := &cobra.Command{
		Use:   "treeset",
		Short: "Time tree set insert, contains, and erase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(runTreesetBench(n, seed))
		},
	}
	cmd.Flags().IntVarP(&n, "ops", "n", 100000, "Number of operations per phase")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for the insertion order shuffle")
	return cmd
}

// runTreesetBench inserts a shuffled key range. Sorted insertion would
// degenerate the unbalanced tree into a list and time the worst case
// instead of the expected one.
func runTreesetBench(n int, seed int64) []result {
	printVerbose("treeset: %d ops per phase, seed %d\n", n, seed)
	keys := rand.New(rand.NewSource(seed)).Perm(n)

	s := treeset.New[int]()
	results := []result{
		timeRun("treeset", "insert", n, func() {
			for _, k := range keys {
				s.Insert(k)
			}
		}),
		timeRun("treeset", "contains", n, func() {
			hits := 0
			for _, k := range keys {
				if s.Contains(k) {
					hits++
				}
			}
			_ = hits
		}),
		timeRun("treeset", "erase", n, func() {
			for _, k := range keys {
				s.Erase(k)
			}
		}),
	}
	s.Destroy()
	return results
}
