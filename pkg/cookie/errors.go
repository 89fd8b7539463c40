package cookie

import "fmt"

// ParseError describes a problem found while validating cookie text.
type ParseError struct {
	Message  string // human-readable error message
	Position int    // byte offset in input (0 if unknown)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("cookie: parse error at offset %d: %s", e.Position, e.Message)
	}
	return fmt.Sprintf("cookie: %s", e.Message)
}

func newParseError(msg string) *ParseError {
	return &ParseError{Message: msg}
}
