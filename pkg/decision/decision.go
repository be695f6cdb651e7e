// Package decision parses boolean decisions like "(a && b) || !c" into
// immutable expression trees with a pure evaluator. The explicit grammar
// replaces any dynamic text-evaluation mechanism; evaluation is a total,
// auditable function of the decision and an assignment.
package decision

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Assignment maps variables to boolean values. Evaluation requires the
// assignment to be total over the decision's variable set.
type Assignment map[string]bool

// Decision is an immutable boolean expression over single lowercase letter
// variables. It is constructed once by Parse and never mutated afterwards;
// evaluation is a pure function of the decision and an assignment.
type Decision struct {
	text string
	root node
	vars []string
}

type node interface {
	eval(a Assignment) (bool, error)
}

type varNode string

type notNode struct {
	x node
}

type andNode struct {
	left, right node
}

type orNode struct {
	left, right node
}

func (v varNode) eval(a Assignment) (bool, error) {
	value, ok := a[string(v)]
	if !ok {
		return false, &UnboundVariableError{Variable: string(v)}
	}
	return value, nil
}

func (n notNode) eval(a Assignment) (bool, error) {
	value, err := n.x.eval(a)
	if err != nil {
		return false, err
	}
	return !value, nil
}

func (n andNode) eval(a Assignment) (bool, error) {
	left, err := n.left.eval(a)
	if err != nil {
		return false, err
	}
	right, err := n.right.eval(a)
	if err != nil {
		return false, err
	}
	return left && right, nil
}

func (n orNode) eval(a Assignment) (bool, error) {
	left, err := n.left.eval(a)
	if err != nil {
		return false, err
	}
	right, err := n.right.eval(a)
	if err != nil {
		return false, err
	}
	return left || right, nil
}

// Parse turns decision text like "(a && b) || !c" into a Decision. It
// returns a *SyntaxError for unbalanced parentheses, unsupported operators,
// multi-letter identifiers or missing operands.
func Parse(text string) (*Decision, error) {
	tokens, err := (&lexer{input: text}).tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != tokenEOF {
		return nil, &SyntaxError{Pos: t.pos, Msg: "unexpected input after expression"}
	}

	set := map[string]struct{}{}
	collectVars(root, set)
	vars := maps.Keys(set)
	slices.Sort(vars)

	return &Decision{text: text, root: root, vars: vars}, nil
}

func collectVars(n node, set map[string]struct{}) {
	switch x := n.(type) {
	case varNode:
		set[string(x)] = struct{}{}
	case notNode:
		collectVars(x.x, set)
	case andNode:
		collectVars(x.left, set)
		collectVars(x.right, set)
	case orNode:
		collectVars(x.left, set)
		collectVars(x.right, set)
	}
}

// Variables returns the sorted, de-duplicated variable names referenced by
// the decision. This ordering fixes the column order of everything derived
// from the decision.
func (d *Decision) Variables() []string {
	return slices.Clone(d.vars)
}

// Evaluate computes the decision's value under the given assignment. It
// returns an *UnboundVariableError if the assignment omits a variable the
// decision references.
func (d *Decision) Evaluate(a Assignment) (bool, error) {
	return d.root.eval(a)
}

func (d *Decision) String() string {
	return d.text
}
