package decision

import "fmt"

// SyntaxError reports malformed decision text. The text is rejected before
// any evaluation takes place.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// UnboundVariableError reports an assignment which does not bind a variable
// the decision references. It indicates a caller bug and is always surfaced.
type UnboundVariableError struct {
	Variable string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("assignment does not bind variable %q", e.Variable)
}
