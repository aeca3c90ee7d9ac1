package dagsyntax

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel every *ParseError wraps, so callers can
// branch with errors.Is(err, dagsyntax.ErrSyntax) without caring about
// the offset/expected-token detail.
var ErrSyntax = errors.New("dagsyntax: syntax error")

// ParseError carries the byte offset a parse failure was detected at
// and a human-readable description of what the parser expected there.
type ParseError struct {
	Offset   int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dagsyntax: at offset %d: %s", e.Offset, e.Expected)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }
