package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/covtools/covsolve/pkg/decision"
	"github.com/covtools/covsolve/pkg/truthtable"
)

type truthTableOpts struct {
	expression  string
	variableCap int
}

var truthtableopts = truthTableOpts{}

func NewTruthTableCmd() *cobra.Command {

	truthTableCmd := &cobra.Command{
		Use:   "truthtable",
		Short: "generate the full truth table of a boolean decision",
		Long: `enumerates all variable assignments of a decision like "(a && b) || !c" and
prints each row with its 1-based index and result. The enumeration is exponential in the
number of variables and refuses to run above the variable cap.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decision.Parse(truthtableopts.expression)
			if err != nil {
				return err
			}
			table, err := truthtable.GenerateWithCap(d, truthtableopts.variableCap)
			if err != nil {
				return err
			}
			if value, constant := d.Constant(); constant {
				logrus.Warnf("Decision %q is constantly %t, no variable affects the outcome.", d, value)
			}
			printTable(table)
			return nil
		},
	}

	truthTableCmd.PersistentFlags().StringVarP(&truthtableopts.expression, "expression", "e", "", "boolean decision to analyze (variables a-z, operators !, &&, ||)")
	truthTableCmd.PersistentFlags().IntVarP(&truthtableopts.variableCap, "cap", "c", truthtable.DefaultVariableCap, "maximum number of variables the exhaustive enumeration may expand")
	_ = truthTableCmd.MarkPersistentFlagRequired("expression")
	return truthTableCmd
}

func printTable(table *truthtable.Table) {
	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprint(w, "Test")
	for _, v := range table.Variables {
		fmt.Fprintf(w, "\t%s", v)
	}
	fmt.Fprint(w, "\tResult\n")
	for _, row := range table.Rows {
		fmt.Fprintf(w, "%d", row.Index)
		for _, v := range table.Variables {
			fmt.Fprintf(w, "\t%d", bit(row.Assignment[v]))
		}
		fmt.Fprintf(w, "\t%d\n", bit(row.Result))
	}
	w.Flush()
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
