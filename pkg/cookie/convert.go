package cookie

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-cookie/internal/fastparser"
	"github.com/shapestone/shape-cookie/internal/parser"
)

// NodeToCookie converts a cookie ObjectNode to a Cookie.
func NodeToCookie(node ast.SchemaNode) (*Cookie, error) {
	fpCookie, err := parser.NodeToCookie(node)
	if err != nil {
		return nil, err
	}
	c := convertCookie(*fpCookie)
	return &c, nil
}

// NodeToCookies converts a "cookies" ObjectNode to a cookie list.
func NodeToCookies(node ast.SchemaNode) (Cookies, error) {
	fpCookies, err := parser.NodeToCookies(node)
	if err != nil {
		return nil, err
	}
	return convertCookies(fpCookies), nil
}

// CookieToNode converts a Cookie to an AST ObjectNode.
func CookieToNode(c *Cookie) ast.SchemaNode {
	internal := toInternal(c)
	return parser.CookieToNode(&internal)
}

// CookiesToNode converts a cookie list to a "cookies" ObjectNode.
func CookiesToNode(cs Cookies) ast.SchemaNode {
	internal := make([]fastparser.Cookie, len(cs))
	for i := range cs {
		internal[i] = toInternal(&cs[i])
	}
	return parser.CookiesToNode(internal)
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}
