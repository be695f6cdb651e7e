package cover

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Solution is the outcome of a set-cover search. Feasible=false means no
// subset of tests covers every fault; that is a valid, reportable result
// and deliberately not an error.
type Solution struct {
	Tests    []int
	Feasible bool
}

// SizeLimitError reports that the exact search was requested for more tests
// than the caller-supplied limit allows. The exact path never silently
// degrades to the approximation; the caller routes to GreedyMinCover
// instead.
type SizeLimitError struct {
	Tests int
	Limit int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("exact set cover over %d tests exceeds the size limit of %d", e.Tests, e.Limit)
}

// ExactMinCover finds a minimum set cover by brute force: subset sizes
// r = 1..t in increasing order, combinations per size in lexicographic
// index order, returning the first full cover found. Ties at the smallest
// size are therefore broken by enumeration order. The search is O(2^t) in
// the worst case and refuses to run when t exceeds sizeLimit.
func ExactMinCover(m *Matrix, sizeLimit int) (Solution, error) {
	t := m.Tests()
	if t > sizeLimit {
		return Solution{}, &SizeLimitError{Tests: t, Limit: sizeLimit}
	}

	for r := 1; r <= t; r++ {
		combo := firstCombination(r)
		for combo != nil {
			if IsFullCover(m.Union(combo)) {
				return Solution{Tests: combo, Feasible: true}, nil
			}
			combo = nextCombination(combo, t)
		}
	}
	logrus.Debugf("no combination of up to %d tests covers all %d faults", t, m.Faults())
	return Solution{}, nil
}

func firstCombination(r int) []int {
	combo := make([]int, r)
	for i := range combo {
		combo[i] = i
	}
	return combo
}

// nextCombination advances combo to the lexicographically next r-subset of
// 0..t-1, or returns nil when combo is the last one.
func nextCombination(combo []int, t int) []int {
	r := len(combo)
	next := make([]int, r)
	copy(next, combo)
	for i := r - 1; i >= 0; i-- {
		if next[i] < t-r+i {
			next[i]++
			for j := i + 1; j < r; j++ {
				next[j] = next[j-1] + 1
			}
			return next
		}
	}
	return nil
}

// GreedyMinCover is the classical polynomial-time set-cover approximation:
// repeatedly pick the test covering the most still-uncovered faults, ties
// broken by the lowest test index. The result is not guaranteed minimal.
// When no remaining test covers any uncovered fault the whole problem is
// infeasible and no partial selection is returned.
func GreedyMinCover(m *Matrix) (Solution, error) {
	t := m.Tests()
	uncovered := map[int]struct{}{}
	for j := 0; j < m.Faults(); j++ {
		uncovered[j] = struct{}{}
	}

	var chosen []int
	for len(uncovered) > 0 {
		best := -1
		bestGain := 0
		for i := 0; i < t; i++ {
			gain := 0
			for j := range uncovered {
				if m.rows[i][j] {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				best = i
			}
		}
		if best < 0 {
			logrus.Debugf("%d faults are not covered by any test", len(uncovered))
			return Solution{}, nil
		}
		chosen = append(chosen, best)
		for j := range uncovered {
			if m.rows[best][j] {
				delete(uncovered, j)
			}
		}
	}
	return Solution{Tests: chosen, Feasible: true}, nil
}
