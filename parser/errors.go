package parser

import (
	"fmt"

	"github.com/metaphox/kaleido-lang/ast"
)

// Error is a positioned parse diagnostic. Parse functions return it instead
// of printing: the message names the construct that was expected, and the
// caller decides how (or whether) to surface it.
type Error struct {
	Line int
	Col  int
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("line %d col %d: %s", e.Line, e.Col, e.Msg)
}

// errorf builds an *Error positioned at tok.
func errorf(tok ast.Token, format string, args ...any) *Error {
	return &Error{
		Line: tok.Line,
		Col:  tok.Col,
		Msg:  fmt.Sprintf(format, args...),
	}
}
