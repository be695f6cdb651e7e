package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/covtools/covsolve/pkg/decision"
	"github.com/covtools/covsolve/pkg/mcdc"
	"github.com/covtools/covsolve/pkg/truthtable"
)

type mcdcOpts struct {
	expression  string
	variableCap int
}

var mcdcopts = mcdcOpts{}

func NewMcdcCmd() *cobra.Command {

	mcdcCmd := &cobra.Command{
		Use:   "mcdc",
		Short: "find MC/DC independence pairs and a small covering test suite for a decision",
		Long: `generates the truth table of a decision, reports for every variable the complete
list of independence pairs (rows differing only in that variable with differing results), and
derives a test suite from the first pair of each covered variable. The suite is a heuristic,
not a verified minimum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decision.Parse(mcdcopts.expression)
			if err != nil {
				return err
			}
			if value, constant := d.Constant(); constant {
				logrus.Warnf("Decision %q is constantly %t and cannot satisfy MC/DC for any variable.", d, value)
			}
			table, err := truthtable.GenerateWithCap(d, mcdcopts.variableCap)
			if err != nil {
				return err
			}
			printTable(table)

			pairs := mcdc.FindPairs(table)
			status := mcdc.CoverageStatus(pairs)
			fmt.Println()
			for _, v := range table.Variables {
				if !status[v] {
					logrus.Warnf("Variable %q has no independence pair, it does not independently affect the outcome.", v)
					fmt.Printf("%s: no MC/DC pairs\n", v)
					continue
				}
				fmt.Printf("%s:", v)
				for _, pair := range pairs[v] {
					fmt.Printf(" (%d,%d)", pair.First, pair.Second)
				}
				fmt.Println()
			}

			suite := mcdc.MinimalSuite(table, pairs)
			fmt.Printf("\nTest suite (first pair per variable): %v\n", suite)
			fmt.Printf("Total: %d of %d test cases\n", len(suite), len(table.Rows))
			return nil
		},
	}

	mcdcCmd.PersistentFlags().StringVarP(&mcdcopts.expression, "expression", "e", "", "boolean decision to analyze (variables a-z, operators !, &&, ||)")
	mcdcCmd.PersistentFlags().IntVarP(&mcdcopts.variableCap, "cap", "c", truthtable.DefaultVariableCap, "maximum number of variables the exhaustive enumeration may expand")
	_ = mcdcCmd.MarkPersistentFlagRequired("expression")
	return mcdcCmd
}
