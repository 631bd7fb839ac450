package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dskit/ds/hashmap"
)

func init() {
	rootCmd.AddCommand(newHashmapCmd())
}

func newHashmapCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "hashmap",
		Short: "Time hash map insert, lookup, and erase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(runHashmapBench(n))
		},
	}
	cmd.Flags().IntVarP(&n, "ops", "n", 100000, "Number of operations per phase")
	return cmd
}

func runHashmapBench(n int) []result {
	printVerbose("hashmap: %d ops per phase\n", n)
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	m := hashmap.NewString[int](16)
	results := []result{
		timeRun("hashmap", "insert", n, func() {
			for i, k := range keys {
				m.Insert(k, i)
			}
		}),
		timeRun("hashmap", "find", n, func() {
			hits := 0
			for _, k := range keys {
				if m.Find(k) != nil {
					hits++
				}
			}
			_ = hits
		}),
		timeRun("hashmap", "erase", n, func() {
			for _, k := range keys {
				m.Erase(k)
			}
		}),
	}
	m.Destroy()
	return results
}
