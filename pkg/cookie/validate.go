package cookie

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-cookie/internal/fastparser"
)

// Validate checks that input is clean cookie text: it parses without any
// attribute being dropped, degraded or ignored. Everything the lenient
// parser would merely warn about becomes a *ParseError here. Empty input
// is valid.
func Validate(input string) error {
	if warnings := fastparser.Warnings([]byte(input)); len(warnings) > 0 {
		return newParseError(warnings[0])
	}
	return nil
}

// ValidateReader reads all data from r and validates it as cookie text.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	if warnings := fastparser.Warnings(data); len(warnings) > 0 {
		return newParseError(warnings[0])
	}
	return nil
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
