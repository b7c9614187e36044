package jsonpath

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates a path expression syntax error.
var ErrSyntax = errors.New("jsonpath: syntax error")

// PathSyntaxError describes why a query string could not be tokenized.
// Pos is the byte offset in Query where the problem was detected.
type PathSyntaxError struct {
	Query  string
	Pos    int
	Reason string
}

func (e *PathSyntaxError) Error() string {
	return fmt.Sprintf("%v: %s at position %d in %q", ErrSyntax, e.Reason, e.Pos, e.Query)
}

// Unwrap makes errors.Is(err, ErrSyntax) hold.
func (e *PathSyntaxError) Unwrap() error {
	return ErrSyntax
}
