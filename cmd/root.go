package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "covsolve",
	Short: "covsolve analyzes boolean decisions and fault-coverage data to derive minimal test suites",
	Long: `The tool generates truth tables for boolean decisions, finds MC/DC independence
pairs per condition, and computes exact or greedy minimum set covers over
tests-by-faults coverage matrices`,
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.AddCommand(NewTruthTableCmd())
	rootCmd.AddCommand(NewMcdcCmd())
	rootCmd.AddCommand(NewCoverCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
