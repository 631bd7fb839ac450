package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(newWorkloadCmd())
}

// workloadSpec is the YAML schema for a benchmark mix.
//
//	runs:
//	  - structure: vector
//	    ops: 200000
//	  - structure: treeset
//	    ops: 50000
//	    seed: 7
type workloadSpec struct {
	Runs []workloadRun `yaml:"runs"`
}

type workloadRun struct {
	Structure string `yaml:"structure"`
	Ops       int    `yaml:"ops"`
	Seed      int64  `yaml:"seed"`
}

func newWorkloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workload <file.yaml>",
		Short: "Run a YAML-described mix of container benchmarks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload(args[0])
		},
	}
	return cmd
}

func runWorkload(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read workload: %w", err)
	}
	var spec workloadSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return fmt.Errorf("failed to parse workload: %w", err)
	}
	if len(spec.Runs) == 0 {
		return fmt.Errorf("workload %s names no runs", path)
	}

	var results []result
	for i, run := range spec.Runs {
		if run.Ops <= 0 {
			return fmt.Errorf("run %d: ops must be positive", i)
		}
		printVerbose("run %d: %s x%d\n", i, run.Structure, run.Ops)
		switch run.Structure {
		case "vector":
			results = append(results, runVectorBench(run.Ops)...)
		case "hashmap":
			results = append(results, runHashmapBench(run.Ops)...)
		case "slab":
			results = append(results, runSlabBench(run.Ops)...)
		case "treeset":
			seed := run.Seed
			if seed == 0 {
				seed = 1
			}
			results = append(results, runTreesetBench(run.Ops, seed)...)
		default:
			return fmt.Errorf("run %d: unknown structure %q", i, run.Structure)
		}
	}
	return report(results)
}
