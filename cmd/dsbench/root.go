package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "dsbench",
	Short: "Exercise and time the dskit container operations",
	Long: `dsbench runs timed workloads against the dskit containers: the dynamic
vector, the open-addressing hash map, the generational slab, and the sorted
tree set. Each subcommand drives one container; the workload subcommand runs
a YAML-described mix of them.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// result is one timed run of an operation mix against a container.
type result struct {
	Structure string        `json:"structure"`
	Op        string        `json:"op"`
	N         int           `json:"n"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	NsPerOp   int64         `json:"ns_per_op"`
}

// timeRun measures fn driving n operations and builds the result row.
func timeRun(structure, op string, n int, fn func()) result {
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	perOp := int64(0)
	if n > 0 {
		perOp = elapsed.Nanoseconds() / int64(n)
	}
	return result{Structure: structure, Op: op, N: n, Elapsed: elapsed, NsPerOp: perOp}
}

func report(results []result) error {
	if jsonOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}
	for _, r := range results {
		printInfo("%-10s %-14s n=%-9d total=%-12s %d ns/op\n",
			r.Structure, r.Op, r.N, r.Elapsed, r.NsPerOp)
	}
	return nil
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
