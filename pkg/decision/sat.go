package decision

import "github.com/crillab/gophersat/bf"

// Formula converts the decision into a gophersat boolean formula, keeping
// the variable names as SAT variable names.
func (d *Decision) Formula() bf.Formula {
	return toFormula(d.root)
}

func toFormula(n node) bf.Formula {
	switch x := n.(type) {
	case varNode:
		return bf.Var(string(x))
	case notNode:
		return bf.Not(toFormula(x.x))
	case andNode:
		return bf.And(toFormula(x.left), toFormula(x.right))
	case orNode:
		return bf.Or(toFormula(x.left), toFormula(x.right))
	default:
		panic("unknown decision node")
	}
}

// Satisfiable reports whether some assignment makes the decision true.
func (d *Decision) Satisfiable() bool {
	return bf.Solve(d.Formula()) != nil
}

// Falsifiable reports whether some assignment makes the decision false.
func (d *Decision) Falsifiable() bool {
	return bf.Solve(bf.Not(d.Formula())) != nil
}

// Constant reports whether the decision evaluates to the same value under
// every assignment, and which value that is. A constant decision can never
// satisfy MC/DC for any of its variables, so callers can skip the
// exhaustive analysis entirely.
func (d *Decision) Constant() (value bool, constant bool) {
	satisfiable := d.Satisfiable()
	falsifiable := d.Falsifiable()
	switch {
	case satisfiable && !falsifiable:
		return true, true
	case !satisfiable && falsifiable:
		return false, true
	default:
		return false, false
	}
}
