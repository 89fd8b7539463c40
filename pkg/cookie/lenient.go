package cookie

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-cookie/internal/fastparser"
	"github.com/shapestone/shape-cookie/internal/parser"
)

// UnmarshalLenient performs best-effort parsing of a cookie header and
// reports what it had to drop. The cookies themselves are identical to
// what ParseCookies returns — parsing is always lenient — but the
// Warnings list enumerates every dropped or ignored attribute in input
// order: unparseable Expires dates, non-numeric Max-Age values, invalid
// SameSite tokens, unrecognized attribute names, and pairs missing "=".
func UnmarshalLenient(data []byte) *ParseResult {
	internal := fastparser.NewLenientParser(data).Parse()
	return &ParseResult{
		Cookies:  convertCookies(internal.Cookies),
		Warnings: internal.Warnings,
	}
}

// ParseLenient is the AST path equivalent of UnmarshalLenient.
// It returns an AST node (ObjectNode), a list of warnings, and an error.
// The error exists for interface symmetry with sibling shape parsers and
// is always nil: malformed cookie text degrades to warnings, never to a
// failed parse.
func ParseLenient(input string) (ast.SchemaNode, []string, error) {
	internal := fastparser.NewLenientParser([]byte(input)).Parse()
	return parser.CookiesToNode(internal.Cookies), internal.Warnings, nil
}
