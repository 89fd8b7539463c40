package cookie

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from Parse) back to cookie wire-format bytes.
//
// The node must be an ObjectNode as produced by Parse() — a "cookies"
// object holding the cookie array — or a single cookie ObjectNode as
// produced by CookieToNode.
func Render(node ast.SchemaNode) ([]byte, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("cookie: Render: expected ObjectNode, got %T", node)
	}

	// A "cookies" wrapper renders the whole combined header; anything
	// else is treated as one cookie object.
	if _, isList := obj.Properties()["cookies"]; isList {
		cookies, err := NodeToCookies(node)
		if err != nil {
			return nil, fmt.Errorf("cookie: Render: %w", err)
		}
		return Marshal(cookies)
	}

	c, err := NodeToCookie(node)
	if err != nil {
		return nil, fmt.Errorf("cookie: Render: %w", err)
	}
	return Marshal(c)
}
