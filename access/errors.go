package access

import (
	"fmt"
	"strings"

	"github.com/Michael-F-Bryan/stringly-typed/internal/match"
)

// The four ways a path operation can fail. Each carries the static data
// a caller needs to present the failure without re-deriving it, and each
// is returned unchanged through every level of delegation.

// TypeError reports a leaf SetValue whose incoming value's tag differs
// from the leaf's own tag. The leaf is left unchanged.
type TypeError struct {
	Expected string
	Found    string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, found %s", e.Expected, e.Found)
}

// TooManyKeysError reports a leaf that received a non-empty remaining
// path. ElementsRemaining counts every unconsumed segment, including
// the one that triggered the check.
type TooManyKeysError struct {
	ElementsRemaining int
}

func (e *TooManyKeysError) Error() string {
	return fmt.Sprintf("path continues past a leaf value: %d segments left over", e.ElementsRemaining)
}

// UnknownFieldError reports a path segment that names no declared field
// of the struct that consumed it. ValidFields is the complete declared
// key list for that struct, in declaration order.
type UnknownFieldError struct {
	Field       string
	ValidFields []string
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("unknown field %q (valid fields: %s)", e.Field, strings.Join(e.ValidFields, ", "))

	if hint, ok := match.Closest(e.Field, e.ValidFields); ok {
		msg += fmt.Sprintf("; did you mean %q?", hint)
	}

	return msg
}

// CantSerializeError reports an empty path applied to a struct: the
// value union has no structured variant, so a struct can be neither
// read into nor written from a Value.
type CantSerializeError struct {
	TypeName string
}

func (e *CantSerializeError) Error() string {
	return fmt.Sprintf("%s is a struct and has no scalar representation", e.TypeName)
}
