package propval

import (
	"errors"
	"fmt"
)

// ErrNotComparable is returned by Comparer.Compare for values that have no
// ordering: text values, or values of different kinds.
var ErrNotComparable = errors.New("values are not comparable")

// ParseError reports malformed literal or value-set text. Pos is the byte
// offset in Input where the problem was detected.
type ParseError struct {
	Input   string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d in %q: %s", e.Pos, e.Input, e.Message)
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
