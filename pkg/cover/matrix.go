// Package cover models tests-by-faults coverage matrices and solves the
// minimum set-cover problem over them, either exactly (bounded brute force)
// or with the classical greedy approximation.
package cover

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// DimensionMismatchError reports a coverage vector whose length differs
// from the declared fault count. Malformed input is rejected at
// construction time.
type DimensionMismatchError struct {
	Test   string
	Got    int
	Faults int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("coverage vector of test %q has %d entries, expected %d", e.Test, e.Got, e.Faults)
}

// Matrix is an immutable tests-by-faults binary coverage matrix. Row i
// holds true in column j iff test i detects fault j.
type Matrix struct {
	names  []string
	rows   [][]bool
	faults int
}

// NewMatrix builds a Matrix from test names and equal-length coverage
// vectors. The fault count is taken from the first vector; any vector of a
// different length, and any name/vector count mismatch, is a
// *DimensionMismatchError.
func NewMatrix(names []string, rows [][]bool) (*Matrix, error) {
	if len(names) != len(rows) {
		return nil, fmt.Errorf("got %d test names but %d coverage vectors", len(names), len(rows))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("coverage matrix needs at least one test")
	}
	faults := len(rows[0])
	if faults == 0 {
		return nil, fmt.Errorf("coverage matrix needs at least one fault")
	}
	copied := make([][]bool, 0, len(rows))
	for i, row := range rows {
		if len(row) != faults {
			return nil, &DimensionMismatchError{Test: names[i], Got: len(row), Faults: faults}
		}
		copied = append(copied, slices.Clone(row))
	}
	return &Matrix{names: slices.Clone(names), rows: copied, faults: faults}, nil
}

// Tests returns the number of tests (rows).
func (m *Matrix) Tests() int {
	return len(m.rows)
}

// Faults returns the number of faults (columns).
func (m *Matrix) Faults() int {
	return m.faults
}

// Name returns the display name of test i (0-based).
func (m *Matrix) Name(i int) string {
	return m.names[i]
}

// Row returns a copy of test i's coverage vector.
func (m *Matrix) Row(i int) []bool {
	return slices.Clone(m.rows[i])
}

// Union returns the bitwise OR of the selected tests' coverage vectors.
func (m *Matrix) Union(subset []int) []bool {
	covered := make([]bool, m.faults)
	for _, i := range subset {
		for j, hit := range m.rows[i] {
			if hit {
				covered[j] = true
			}
		}
	}
	return covered
}

// IsFullCover reports whether the vector covers every fault.
func IsFullCover(v []bool) bool {
	for _, hit := range v {
		if !hit {
			return false
		}
	}
	return true
}

// ParseVector parses a binary coverage vector of length m. Accepted
// formats: "1 0 1 1", "1011" and "1,0,1,1".
func ParseVector(s string, m int) ([]bool, error) {
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	compact := strings.ReplaceAll(s, " ", "")
	if len(compact) != m {
		return nil, fmt.Errorf("expected %d bits, got %d", m, len(compact))
	}
	bits := make([]bool, 0, m)
	for _, c := range compact {
		switch c {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		default:
			return nil, fmt.Errorf("bits must be 0 or 1, got %q", c)
		}
	}
	return bits, nil
}
