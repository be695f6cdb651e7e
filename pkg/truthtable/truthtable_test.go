package truthtable

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/covtools/covsolve/pkg/decision"
)

func TestGenerateConjunction(t *testing.T) {
	g := NewGomegaWithT(t)
	d, err := decision.Parse("a && b")
	g.Expect(err).ToNot(HaveOccurred())
	table, err := Generate(d)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(table.Variables).To(Equal([]string{"a", "b"}))
	g.Expect(table.Rows).To(Equal([]Row{
		{Index: 1, Assignment: decision.Assignment{"a": false, "b": false}, Result: false},
		{Index: 2, Assignment: decision.Assignment{"a": false, "b": true}, Result: false},
		{Index: 3, Assignment: decision.Assignment{"a": true, "b": false}, Result: false},
		{Index: 4, Assignment: decision.Assignment{"a": true, "b": true}, Result: true},
	}))
}

func TestGenerateEnumerationOrder(t *testing.T) {
	// The first variable is the most significant bit and false sorts before
	// true. Row indices under this ordering are an external contract.
	g := NewGomegaWithT(t)
	d, err := decision.Parse("a || b || c")
	g.Expect(err).ToNot(HaveOccurred())
	table, err := Generate(d)
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(table.Rows).To(HaveLen(8))
	g.Expect(table.Rows[0].Assignment).To(Equal(decision.Assignment{"a": false, "b": false, "c": false}))
	g.Expect(table.Rows[1].Assignment).To(Equal(decision.Assignment{"a": false, "b": false, "c": true}))
	g.Expect(table.Rows[4].Assignment).To(Equal(decision.Assignment{"a": true, "b": false, "c": false}))
	g.Expect(table.Rows[7].Assignment).To(Equal(decision.Assignment{"a": true, "b": true, "c": true}))
	g.Expect(table.Rows[0].Result).To(BeFalse())
	g.Expect(table.Rows[7].Result).To(BeTrue())
}

func TestGenerateProperties(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		rows       int
	}{
		{name: "one variable yields two rows", expression: "a", rows: 2},
		{name: "duplicated variables count once", expression: "a && (a || b)", rows: 4},
		{name: "four variables yield sixteen rows", expression: "(a || !b) && (c || (!d && a))", rows: 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			d, err := decision.Parse(tt.expression)
			g.Expect(err).ToNot(HaveOccurred())
			table, err := Generate(d)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(table.Rows).To(HaveLen(tt.rows))

			seen := map[string]struct{}{}
			for i, row := range table.Rows {
				g.Expect(row.Index).To(Equal(i + 1))
				key := ""
				for _, v := range table.Variables {
					value, ok := row.Assignment[v]
					g.Expect(ok).To(BeTrue())
					if value {
						key += "1"
					} else {
						key += "0"
					}
				}
				seen[key] = struct{}{}
			}
			g.Expect(seen).To(HaveLen(tt.rows), "assignments must be pairwise distinct")
		})
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	g := NewGomegaWithT(t)
	d, err := decision.Parse("(a && b) || !c")
	g.Expect(err).ToNot(HaveOccurred())
	first, err := Generate(d)
	g.Expect(err).ToNot(HaveOccurred())
	second, err := Generate(d)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(second).To(Equal(first))
}

func TestGenerateVariableCap(t *testing.T) {
	g := NewGomegaWithT(t)
	d, err := decision.Parse("a && b && c")
	g.Expect(err).ToNot(HaveOccurred())
	_, err = GenerateWithCap(d, 2)
	g.Expect(err).To(HaveOccurred())
	capErr := &TooManyVariablesError{}
	g.Expect(errors.As(err, &capErr)).To(BeTrue())
	g.Expect(capErr.Variables).To(Equal(3))
	g.Expect(capErr.Cap).To(Equal(2))

	table, err := GenerateWithCap(d, 3)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(table.Rows).To(HaveLen(8))
}
