package loaders

import (
	"errors"
	"fmt"
)

// Parse error kinds. A *ParseError wraps exactly one of these, so callers
// can match with errors.Is and recover the line with errors.As.
var (
	ErrUnexpectedEndOfInput      = errors.New("unexpected end of input")
	ErrUnexpectedToken           = errors.New("unexpected token")
	ErrUnknownObjectType         = errors.New("unknown object type")
	ErrUnknownField              = errors.New("unknown field")
	ErrValueOutOfDomain          = errors.New("value out of domain")
	ErrStringTooLong             = errors.New("string too long")
	ErrUnsupportedEscapeSequence = errors.New("unsupported escape sequence")
	ErrNonASCIICharacter         = errors.New("non-ascii character")
)

// ErrCannotOpenSceneFile is returned by LoadScene when the file cannot be opened
var ErrCannotOpenSceneFile = errors.New("cannot open scene file")

// ParseError reports a fatal problem in a scene document
type ParseError struct {
	Kind error  // One of the Err* kinds above
	Line int    // 1-based line where parsing stopped
	Msg  string // Detail, may be empty
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
