package cookie

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-cookie/internal/parser"
)

// Parse parses a cookie header value into an AST from a string.
//
// The result is an ast.ObjectNode of the form:
//
//	{ "type": "cookies",
//	  "cookies": [
//	    { "name": "session", "value": "abc123",
//	      "path": "/", "maxAge": 3600,
//	      "secure": true, "httpOnly": true, "sameSite": "Lax" },
//	    ... ] }
//
// Optional attributes appear only when set.
func Parse(input string) (ast.SchemaNode, error) {
	p := parser.NewParser([]byte(input))
	return p.Parse()
}

// ParseReader reads all data from r and parses it as a cookie header into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	p := parser.NewParser(data)
	return p.Parse()
}
