// Package parser implements an AST parser for HTTP cookie headers.
// It produces shape-core AST nodes (ObjectNode, LiteralNode, ArrayDataNode)
// from cookie wire-format input.
//
// A header is mapped to an ObjectNode with the following structure:
//
//	{ "type": "cookies",
//	  "cookies": [
//	    { "name": "session", "value": "abc123",
//	      "path": "/", "maxAge": 3600,
//	      "secure": true, "httpOnly": true,
//	      "sameSite": "Lax" },
//	    ...
//	  ] }
//
// Optional attributes are present only when set; the MaxAge sentinel is
// never emitted.
package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-cookie/internal/fastparser"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from cookie wire-format data.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the header and returns an AST ObjectNode. Parsing is
// lenient and cannot fail; the error return exists for interface
// symmetry with sibling shape parsers.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	cookies := fastparser.ParseCookies(p.data)
	return CookiesToNode(cookies), nil
}

// CookiesToNode converts a cookie list to the "cookies" ObjectNode form.
func CookiesToNode(cookies []fastparser.Cookie) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(cookies))
	for i := range cookies {
		elements[i] = CookieToNode(&cookies[i])
	}
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("cookies", zeroPos),
		"cookies": ast.NewArrayDataNode(elements, zeroPos),
	}, zeroPos)
}

// CookieToNode converts a single cookie to an ObjectNode.
func CookieToNode(c *fastparser.Cookie) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"name":  ast.NewLiteralNode(c.Name, zeroPos),
		"value": ast.NewLiteralNode(c.Value, zeroPos),
	}

	if c.Domain != "" {
		props["domain"] = ast.NewLiteralNode(c.Domain, zeroPos)
	}
	if c.Path != "" {
		props["path"] = ast.NewLiteralNode(c.Path, zeroPos)
	}
	if !c.Expires.IsZero() {
		props["expires"] = ast.NewLiteralNode(string(fastparser.AppendHTTPDate(nil, c.Expires)), zeroPos)
	}
	if c.MaxAge != fastparser.MaxAgeUnset {
		props["maxAge"] = ast.NewLiteralNode(c.MaxAge, zeroPos)
	}
	if c.Secure {
		props["secure"] = ast.NewLiteralNode(true, zeroPos)
	}
	if c.HttpOnly {
		props["httpOnly"] = ast.NewLiteralNode(true, zeroPos)
	}
	if c.SameSite != "" {
		props["sameSite"] = ast.NewLiteralNode(c.SameSite, zeroPos)
	}

	return ast.NewObjectNode(props, zeroPos)
}

// NodeToCookies converts a "cookies" ObjectNode back to a cookie list.
func NodeToCookies(node ast.SchemaNode) ([]fastparser.Cookie, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	arrProp, ok := obj.Properties()["cookies"]
	if !ok {
		return nil, fmt.Errorf("missing 'cookies' property")
	}
	arr, ok := arrProp.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for cookies, got %T", arrProp)
	}

	elements := arr.Elements()
	cookies := make([]fastparser.Cookie, 0, len(elements))
	for _, elem := range elements {
		c, err := NodeToCookie(elem)
		if err != nil {
			continue
		}
		cookies = append(cookies, *c)
	}
	return cookies, nil
}

// NodeToCookie converts a cookie ObjectNode back to a Cookie.
func NodeToCookie(node ast.SchemaNode) (*fastparser.Cookie, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	c := fastparser.NewCookie("", "")

	c.Name = literalString(props["name"])
	c.Value = literalString(props["value"])
	c.Domain = literalString(props["domain"])
	c.Path = literalString(props["path"])

	if expires := literalString(props["expires"]); expires != "" {
		if t, ok := fastparser.ParseHTTPDate(expires); ok {
			c.Expires = t
		}
	}
	if v, ok := props["maxAge"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			switch n := lit.Value().(type) {
			case int64:
				c.MaxAge = n
			case float64:
				c.MaxAge = int64(n)
			}
		}
	}
	c.Secure = literalBool(props["secure"])
	c.HttpOnly = literalBool(props["httpOnly"])
	if token := literalString(props["sameSite"]); token != "" {
		if canon, ok := fastparser.CanonicalSameSite(token); ok {
			c.SameSite = canon
		}
	}

	return &c, nil
}

func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}

func literalBool(node ast.SchemaNode) bool {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return false
	}
	b, _ := lit.Value().(bool)
	return b
}
