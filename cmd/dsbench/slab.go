package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/dskit/ds/slab"
)

func init() {
	rootCmd.AddCommand(newSlabCmd())
}

func newSlabCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "slab",
		Short: "Time slab borrow, access, and return",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(runSlabBench(n))
		},
	}
	cmd.Flags().IntVarP(&n, "ops", "n", 100000, "Number of operations per phase")
	return cmd
}

func runSlabBench(n int) []result {
	printVerbose("slab: %d ops per phase\n", n)
	s := slab.New[int](16)
	handles := make([]slab.Handle, n)
	results := []result{
		timeRun("slab", "borrow", n, func() {
			for i := 0; i < n; i++ {
				handles[i] = s.Borrow(i)
			}
		}),
		timeRun("slab", "get", n, func() {
			sum := 0
			for _, h := range handles {
				sum += *s.Get(h)
			}
			_ = sum
		}),
		timeRun("slab", "return", n, func() {
			for _, h := range handles {
				s.Return(h)
			}
		}),
	}
	s.Destroy()
	return results
}
