package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/dskit/ds/vector"
)

func init() {
	rootCmd.AddCommand(newVectorCmd())
}

func newVectorCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Time dynamic array push, index, and remove",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(runVectorBench(n))
		},
	}
	cmd.Flags().IntVarP(&n, "ops", "n", 100000, "Number of operations per phase")
	return cmd
}

func runVectorBench(n int) []result {
	printVerbose("vector: %d ops per phase\n", n)
	v := vector.New[int](16)
	results := []result{
		timeRun("vector", "push", n, func() {
			for i := 0; i < n; i++ {
				v.Push(i)
			}
		}),
		timeRun("vector", "get", n, func() {
			sum := 0
			for i := 0; i < n; i++ {
				sum += *v.Get(i)
			}
			_ = sum
		}),
		timeRun("vector", "pop", n, func() {
			for i := 0; i < n; i++ {
				v.Pop()
			}
		}),
	}
	v.Destroy()
	return results
}
