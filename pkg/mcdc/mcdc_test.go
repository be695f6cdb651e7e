package mcdc

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/covtools/covsolve/pkg/decision"
	"github.com/covtools/covsolve/pkg/truthtable"
)

func generate(g *WithT, expression string) *truthtable.Table {
	d, err := decision.Parse(expression)
	g.Expect(err).ToNot(HaveOccurred())
	table, err := truthtable.Generate(d)
	g.Expect(err).ToNot(HaveOccurred())
	return table
}

func TestFindPairs(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		pairs      map[string][]Pair
	}{
		{name: "disjunction has one pair per variable",
			expression: "a || b",
			pairs: map[string][]Pair{
				"a": {{First: 1, Second: 3}},
				"b": {{First: 1, Second: 2}},
			},
		},
		{name: "conjunction has one pair per variable",
			expression: "a && b",
			pairs: map[string][]Pair{
				"a": {{First: 2, Second: 4}},
				"b": {{First: 3, Second: 4}},
			},
		},
		{name: "masked variable has no pairs",
			expression: "a && (a || b)",
			pairs: map[string][]Pair{
				"a": {{First: 1, Second: 3}, {First: 2, Second: 4}},
				"b": {},
			},
		},
		{name: "single variable flips the outcome",
			expression: "!a",
			pairs: map[string][]Pair{
				"a": {{First: 1, Second: 2}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			table := generate(g, tt.expression)
			g.Expect(FindPairs(table)).To(Equal(tt.pairs))
		})
	}
}

func TestFindPairsRetainsAllPairs(t *testing.T) {
	// For a xor-like decision every variable flip changes the result, so
	// each variable must report every matching row pair, not just the first.
	g := NewGomegaWithT(t)
	table := generate(g, "(a && !b) || (!a && b)")
	pairs := FindPairs(table)
	g.Expect(pairs["a"]).To(Equal([]Pair{{First: 1, Second: 3}, {First: 2, Second: 4}}))
	g.Expect(pairs["b"]).To(Equal([]Pair{{First: 1, Second: 2}, {First: 3, Second: 4}}))
}

func TestCoverageStatus(t *testing.T) {
	g := NewGomegaWithT(t)
	table := generate(g, "a && (a || b)")
	status := CoverageStatus(FindPairs(table))
	g.Expect(status).To(Equal(map[string]bool{"a": true, "b": false}))
}

func TestMinimalSuite(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		suite      []int
	}{
		{name: "conjunction needs three tests",
			expression: "a && b",
			suite:      []int{2, 3, 4},
		},
		{name: "disjunction needs three tests",
			expression: "a || b",
			suite:      []int{1, 2, 3},
		},
		{name: "masked variable contributes nothing",
			expression: "a && (a || b)",
			suite:      []int{1, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			table := generate(g, tt.expression)
			pairs := FindPairs(table)
			suite := MinimalSuite(table, pairs)
			g.Expect(suite).To(Equal(tt.suite))

			covered := 0
			for _, list := range pairs {
				if len(list) > 0 {
					covered++
				}
			}
			g.Expect(len(suite)).To(BeNumerically("<=", 2*covered))
			for _, index := range suite {
				g.Expect(index).To(And(BeNumerically(">=", 1), BeNumerically("<=", len(table.Rows))))
			}
		})
	}
}
