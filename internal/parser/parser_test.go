package parser

import (
	"testing"
	"time"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-cookie/internal/fastparser"
)

func TestParse_SingleCookie(t *testing.T) {
	data := []byte("session=abc123; Path=/; Max-Age=3600; Secure")
	p := NewParser(data)
	node, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()

	typeLit, ok := props["type"].(*ast.LiteralNode)
	if !ok || typeLit.Value() != "cookies" {
		t.Errorf("type = %v, want 'cookies'", props["type"])
	}

	arr, ok := props["cookies"].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("cookies expected ArrayDataNode, got %T", props["cookies"])
	}
	if len(arr.Elements()) != 1 {
		t.Fatalf("cookie count = %d, want 1", len(arr.Elements()))
	}

	cprops := arr.Elements()[0].(*ast.ObjectNode).Properties()

	nameLit, ok := cprops["name"].(*ast.LiteralNode)
	if !ok || nameLit.Value() != "session" {
		t.Errorf("name = %v, want 'session'", cprops["name"])
	}
	maxAgeLit, ok := cprops["maxAge"].(*ast.LiteralNode)
	if !ok || maxAgeLit.Value() != int64(3600) {
		t.Errorf("maxAge = %v, want int64 3600", cprops["maxAge"])
	}
	if _, ok := cprops["httpOnly"]; ok {
		t.Error("httpOnly should be absent when the flag is not set")
	}
}

func TestParse_CombinedHeader(t *testing.T) {
	p := NewParser([]byte("a=1, b=2, c=3"))
	node, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	arr := node.(*ast.ObjectNode).Properties()["cookies"].(*ast.ArrayDataNode)
	if len(arr.Elements()) != 3 {
		t.Errorf("cookie count = %d, want 3", len(arr.Elements()))
	}
}

func TestCookieToNode_ExpiresFormat(t *testing.T) {
	c := fastparser.NewCookie("a", "1")
	c.Expires = time.Date(2021, time.June, 9, 10, 18, 14, 0, time.UTC)

	node := CookieToNode(&c)
	props := node.(*ast.ObjectNode).Properties()

	expLit, ok := props["expires"].(*ast.LiteralNode)
	if !ok {
		t.Fatal("expires property missing")
	}
	if expLit.Value() != "Wed, 09 Jun 2021 10:18:14 GMT" {
		t.Errorf("expires = %v, want IMF-fixdate string", expLit.Value())
	}
}

func TestCookieToNode_SentinelNotEmitted(t *testing.T) {
	c := fastparser.NewCookie("a", "1")
	props := CookieToNode(&c).(*ast.ObjectNode).Properties()
	if _, ok := props["maxAge"]; ok {
		t.Error("maxAge sentinel must not appear in the node")
	}
	if len(props) != 2 {
		t.Errorf("props = %v, want only name and value", props)
	}
}

func TestNodeToCookie_RoundTrip(t *testing.T) {
	c := fastparser.NewCookie("session", "abc")
	c.Domain = "example.com"
	c.Path = "/"
	c.Expires = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	c.MaxAge = 60
	c.Secure = true
	c.HttpOnly = true
	c.SameSite = fastparser.SameSiteNone

	got, err := NodeToCookie(CookieToNode(&c))
	if err != nil {
		t.Fatalf("NodeToCookie() error = %v", err)
	}
	if *got != c {
		t.Errorf("round trip:\n got %+v\nwant %+v", *got, c)
	}
}

func TestNodeToCookies_SkipsBadElements(t *testing.T) {
	node := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type": ast.NewLiteralNode("cookies", zeroPos),
		"cookies": ast.NewArrayDataNode([]ast.SchemaNode{
			CookieToNode(&fastparser.Cookie{Name: "a", Value: "1", MaxAge: fastparser.MaxAgeUnset}),
			ast.NewLiteralNode("not a cookie", zeroPos),
		}, zeroPos),
	}, zeroPos)

	cookies, err := NodeToCookies(node)
	if err != nil {
		t.Fatalf("NodeToCookies() error = %v", err)
	}
	if len(cookies) != 1 || cookies[0].Name != "a" {
		t.Errorf("cookies = %+v, want just a=1", cookies)
	}
}

func TestNodeToCookies_Errors(t *testing.T) {
	if _, err := NodeToCookies(ast.NewLiteralNode("x", zeroPos)); err == nil {
		t.Error("literal input should error")
	}
	empty := ast.NewObjectNode(map[string]ast.SchemaNode{}, zeroPos)
	if _, err := NodeToCookies(empty); err == nil {
		t.Error("missing cookies property should error")
	}
	wrongType := ast.NewObjectNode(map[string]ast.SchemaNode{
		"cookies": ast.NewLiteralNode("x", zeroPos),
	}, zeroPos)
	if _, err := NodeToCookies(wrongType); err == nil {
		t.Error("non-array cookies property should error")
	}
}
