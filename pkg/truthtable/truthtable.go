// Package truthtable enumerates all variable assignments of a boolean
// decision. The enumeration is exponential in the number of variables and
// guarded by an explicit variable cap, so callers are told about
// infeasibility instead of waiting on an unbounded computation.
package truthtable

import (
	"fmt"

	"github.com/covtools/covsolve/pkg/decision"
)

// DefaultVariableCap bounds Generate. 2^20 rows is already a heavy report;
// anything beyond that needs a deliberate caller decision via
// GenerateWithCap.
const DefaultVariableCap = 20

// TooManyVariablesError reports that the decision has more variables than
// the exhaustive enumeration is allowed to expand. Recoverable: the caller
// can raise the cap or choose a cheaper analysis.
type TooManyVariablesError struct {
	Variables int
	Cap       int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("decision has %d variables, exhaustive enumeration is capped at %d", e.Variables, e.Cap)
}

// Row is one line of a truth table: a 1-based index, the assignment and the
// decision's result under it.
type Row struct {
	Index      int
	Assignment decision.Assignment
	Result     bool
}

// Table holds the full enumeration for a decision. Variables fixes the
// column order, Rows are indexed 1..2^n.
type Table struct {
	Variables []string
	Rows      []Row
}

// Generate enumerates all assignments of the decision with the default
// variable cap.
func Generate(d *decision.Decision) (*Table, error) {
	return GenerateWithCap(d, DefaultVariableCap)
}

// GenerateWithCap enumerates all 2^n assignments of the decision's n
// variables and evaluates the decision for each. Rows are produced in a
// fixed order: the first (alphabetically smallest) variable is the most
// significant bit and false sorts before true, so row 1 assigns false to
// every variable. Row indices under this ordering are an external contract;
// regenerating the table yields identical rows.
func GenerateWithCap(d *decision.Decision, limit int) (*Table, error) {
	vars := d.Variables()
	n := len(vars)
	if n > limit {
		return nil, &TooManyVariablesError{Variables: n, Cap: limit}
	}

	table := &Table{Variables: vars}
	total := 1 << n
	for i := 0; i < total; i++ {
		assignment := decision.Assignment{}
		for k, v := range vars {
			assignment[v] = i&(1<<(n-1-k)) != 0
		}
		result, err := d.Evaluate(assignment)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, Row{
			Index:      i + 1,
			Assignment: assignment,
			Result:     result,
		})
	}
	return table, nil
}
