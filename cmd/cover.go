package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/covtools/covsolve/pkg/cover"
)

type coverOpts struct {
	in        string
	sizeLimit int
}

var coveropts = coverOpts{}

func NewCoverCmd() *cobra.Command {

	coverCmd := &cobra.Command{
		Use:   "cover",
		Short: "compute a minimum set of tests covering all faults of a coverage matrix",
		Long: `loads a tests-by-faults coverage matrix from a YAML file and selects a minimal
set of tests whose combined coverage hits every fault. Matrices with up to size-limit tests
are solved exactly by brute force; larger ones fall back to the greedy approximation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix, err := cover.LoadMatrixFile(coveropts.in)
			if err != nil {
				return err
			}

			var solution cover.Solution
			method := "exact"
			if matrix.Tests() <= coveropts.sizeLimit {
				logrus.Info("Running exact minimum set cover search.")
				solution, err = cover.ExactMinCover(matrix, coveropts.sizeLimit)
			} else {
				logrus.Infof("%d tests exceed the exact search limit of %d, running greedy approximation.", matrix.Tests(), coveropts.sizeLimit)
				method = "greedy"
				solution, err = cover.GreedyMinCover(matrix)
			}
			if err != nil {
				return err
			}
			if !solution.Feasible {
				fmt.Println("No subset of tests can cover all faults (some fault is never hit).")
				return nil
			}

			names := make([]string, 0, len(solution.Tests))
			for _, i := range solution.Tests {
				names = append(names, matrix.Name(i))
			}
			fmt.Printf("Selected tests (%s): %v\n", method, names)
			fmt.Printf("Number selected: %d / %d\n", len(names), matrix.Tests())
			return nil
		},
	}

	coverCmd.PersistentFlags().StringVarP(&coveropts.in, "input", "i", "matrix.yaml", "YAML file with the coverage matrix")
	coverCmd.PersistentFlags().IntVarP(&coveropts.sizeLimit, "size-limit", "s", 20, "maximum number of tests for the exact search")
	return coverCmd
}
