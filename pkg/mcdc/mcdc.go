// Package mcdc analyzes a truth table for Modified Condition/Decision
// Coverage: for every variable it finds the pairs of rows demonstrating
// that the variable independently affects the decision's outcome.
package mcdc

import (
	"golang.org/x/exp/slices"

	"github.com/covtools/covsolve/pkg/truthtable"
)

// Pair references two truth-table rows (First < Second) which differ only
// in one variable's value and produce different results.
type Pair struct {
	First  int
	Second int
}

// FindPairs computes the complete set of independence pairs per variable.
// Two rows i < j form a pair for variable v iff every other variable holds
// the same value in both rows, v differs, and the results differ. Every
// variable of the table gets an entry; an empty list means the decision
// does not satisfy MC/DC for that variable (the variable is masked), which
// is a structural finding, not an error.
func FindPairs(table *truthtable.Table) map[string][]Pair {
	pairs := map[string][]Pair{}
	for _, v := range table.Variables {
		pairs[v] = []Pair{}
		for i := 0; i < len(table.Rows); i++ {
			for j := i + 1; j < len(table.Rows); j++ {
				if qualifies(table, v, i, j) {
					pairs[v] = append(pairs[v], Pair{
						First:  table.Rows[i].Index,
						Second: table.Rows[j].Index,
					})
				}
			}
		}
	}
	return pairs
}

func qualifies(table *truthtable.Table, v string, i, j int) bool {
	first := table.Rows[i]
	second := table.Rows[j]
	for _, other := range table.Variables {
		if other == v {
			continue
		}
		if first.Assignment[other] != second.Assignment[other] {
			return false
		}
	}
	return first.Assignment[v] != second.Assignment[v] && first.Result != second.Result
}

// CoverageStatus reports per variable whether at least one independence
// pair exists.
func CoverageStatus(pairs map[string][]Pair) map[string]bool {
	status := map[string]bool{}
	for v, list := range pairs {
		status[v] = len(list) > 0
	}
	return status
}

// MinimalSuite derives a small test suite achieving MC/DC for all covered
// variables: for each variable with at least one pair it adds both rows of
// the first pair in enumeration order. The result is sorted and
// de-duplicated. This is a heuristic, not a verified minimum: rows are not
// optimized for reuse across variables. A caller needing a true minimum
// must solve a hitting-set problem over the complete pair lists instead.
func MinimalSuite(table *truthtable.Table, pairs map[string][]Pair) []int {
	seen := map[int]struct{}{}
	for _, v := range table.Variables {
		list := pairs[v]
		if len(list) == 0 {
			continue
		}
		seen[list[0].First] = struct{}{}
		seen[list[0].Second] = struct{}{}
	}
	suite := make([]int, 0, len(seen))
	for index := range seen {
		suite = append(suite, index)
	}
	slices.Sort(suite)
	return suite
}
