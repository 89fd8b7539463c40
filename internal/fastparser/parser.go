// Package fastparser implements a lenient HTTP cookie header parser
// without AST construction. It scans bytes directly into Cookie values.
package fastparser

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"
)

// MaxAgeUnset is the sentinel for an absent Max-Age attribute. It is
// distinct from zero: Max-Age=0 is a meaningful value (expire now).
const MaxAgeUnset int64 = math.MinInt64

// Canonical SameSite tokens.
const (
	SameSiteStrict = "Strict"
	SameSiteLax    = "Lax"
	SameSiteNone   = "None"
)

// Cookie represents a parsed cookie with its attributes.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Expires  time.Time // zero value means no Expires attribute
	MaxAge   int64     // MaxAgeUnset means no Max-Age attribute
	Secure   bool
	HttpOnly bool
	SameSite string // canonical token, or "" when unset
}

// NewCookie returns a Cookie with the MaxAge sentinel initialized.
func NewCookie(name, value string) Cookie {
	return Cookie{Name: name, Value: value, MaxAge: MaxAgeUnset}
}

// Parser scans a cookie header value byte by byte. It never fails on
// malformed input; unparseable attributes are dropped and recorded as
// warnings.
type Parser struct {
	data     []byte
	pos      int
	length   int
	warnings []string
}

// NewParser creates a new parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{
		data:   data,
		pos:    0,
		length: len(data),
	}
}

// initParser initializes a parser in-place (stack-friendly, avoids heap alloc).
func initParser(p *Parser, data []byte) {
	p.data = data
	p.pos = 0
	p.length = len(data)
	p.warnings = nil
}

// Token terminators returned by readToken.
const (
	termSemi = iota // ';' — next token belongs to the same cookie
	termComma       // top-level ',' — next token starts a new cookie
	termEOF
)

// ParseCookies parses a Set-Cookie-style header value, possibly holding
// several cookies combined with commas (legacy combined headers).
// Cookies appear in the result in first-appearance order.
func (p *Parser) ParseCookies() []Cookie {
	var cookies []Cookie
	for {
		p.skipOWS()
		if p.pos >= p.length {
			return cookies
		}
		if c, ok := p.parseCookie(); ok {
			cookies = append(cookies, c)
		}
	}
}

// ParseRequestCookies parses the simple Cookie request-header form where
// every ';'-separated pair is its own cookie and no attributes occur.
func (p *Parser) ParseRequestCookies() []Cookie {
	var cookies []Cookie
	for p.pos <= p.length {
		start := p.pos
		for p.pos < p.length && p.data[p.pos] != ';' {
			p.pos++
		}
		tok := trimOWS(p.data[start:p.pos])
		p.pos++ // past ';', or past the end, which terminates the loop
		if len(tok) == 0 {
			continue
		}
		c := NewCookie("", "")
		if eq := bytes.IndexByte(tok, '='); eq >= 0 {
			c.Name = string(trimOWS(tok[:eq]))
			c.Value = string(unquote(trimOWS(tok[eq+1:])))
		} else {
			// Permissive: a bare token is a value with no name.
			c.Value = string(unquote(tok))
		}
		cookies = append(cookies, c)
	}
	return cookies
}

// parseCookie consumes one cookie scope: the name=value pair and every
// ';'-delimited attribute up to the next cookie boundary or end of input.
// ok is false when the scope held nothing but separators.
func (p *Parser) parseCookie() (Cookie, bool) {
	c := NewCookie("", "")

	tok, term := p.readToken()
	tok = trimOWS(tok)
	// Skip separator noise before the pair ("; a=1" still yields {a,1}).
	for len(tok) == 0 && term == termSemi {
		tok, term = p.readToken()
		tok = trimOWS(tok)
	}
	if len(tok) == 0 {
		return c, false
	}

	if eq := bytes.IndexByte(tok, '='); eq >= 0 {
		c.Name = string(trimOWS(tok[:eq]))
		c.Value = string(unquote(trimOWS(tok[eq+1:])))
	} else {
		c.Value = string(unquote(tok))
		p.warnf("pair %q has no '=', token treated as value", string(tok))
	}

	for term == termSemi {
		var attr []byte
		attr, term = p.readToken()
		p.parseAttribute(attr, &c)
	}
	return c, true
}

// readToken reads one ';'-delimited token, stopping early at a comma the
// boundary heuristic classifies as the start of a new cookie. Commas
// inside an Expires value never split: HTTP-dates carry one
// ("Expires=Wed, 09 Jun 2021 10:18:14 GMT").
func (p *Parser) readToken() (tok []byte, term int) {
	start := p.pos
	eq := -1 // offset of the first '=' relative to start
	inQuotes := false
	for p.pos < p.length {
		ch := p.data[p.pos]
		if inQuotes {
			if ch == '"' {
				inQuotes = false
			}
			p.pos++
			continue
		}
		switch ch {
		case '"':
			// Quoting only applies on the value side of the pair.
			if eq >= 0 {
				inQuotes = true
			}
			p.pos++
		case '=':
			if eq < 0 {
				eq = p.pos - start
			}
			p.pos++
		case ';':
			tok = p.data[start:p.pos]
			p.pos++
			return tok, termSemi
		case ',':
			if p.inExpiresValue(start, eq) && isDateContinuation(p.data, p.pos+1) {
				// The HTTP-date's own comma ("Wed, 09 Jun ...").
				p.pos++
				continue
			}
			if p.atCookieBoundary(p.pos) {
				tok = p.data[start:p.pos]
				p.pos++
				return tok, termComma
			}
			p.pos++
		default:
			p.pos++
		}
	}
	return p.data[start:p.pos], termEOF
}

// inExpiresValue reports whether the token starting at start with '=' at
// relative offset eq is an Expires attribute, meaning the scanner is
// currently inside its HTTP-date value.
func (p *Parser) inExpiresValue(start, eq int) bool {
	if eq < 0 {
		return false
	}
	name := trimOWS(p.data[start : start+eq])
	return internAttr(name) == attrExpires
}

// isDateContinuation reports whether the text at i continues an
// HTTP-date after its day-name comma: optional whitespace then a digit
// ("Wed, 09 Jun 2021 ..."). A comma followed by anything else inside an
// Expires value falls through to the normal boundary heuristic.
func isDateContinuation(data []byte, i int) bool {
	for i < len(data) && (data[i] == ' ' || data[i] == '\t') {
		i++
	}
	return i < len(data) && data[i] >= '0' && data[i] <= '9'
}

// atCookieBoundary applies the comma heuristic: a comma separates two
// cookies only when it is immediately followed by whitespace and a token
// matching name=value syntax.
func (p *Parser) atCookieBoundary(commaPos int) bool {
	i := commaPos + 1
	if i >= p.length || (p.data[i] != ' ' && p.data[i] != '\t') {
		return false
	}
	for i < p.length && (p.data[i] == ' ' || p.data[i] == '\t') {
		i++
	}
	start := i
	for i < p.length {
		switch p.data[i] {
		case '=':
			return i > start
		case ';', ',', ' ', '\t', '"':
			return false
		}
		i++
	}
	return false
}

// parseAttribute dispatches one ';'-delimited attribute token onto c.
// Attribute names match case-insensitively; unrecognized names are
// ignored and a malformed value drops only that attribute.
func (p *Parser) parseAttribute(tok []byte, c *Cookie) {
	tok = trimOWS(tok)
	if len(tok) == 0 {
		return
	}

	name := tok
	var val []byte
	if eq := bytes.IndexByte(tok, '='); eq >= 0 {
		name = trimOWS(tok[:eq])
		val = unquote(trimOWS(tok[eq+1:]))
	}

	switch internAttr(name) {
	case attrExpires:
		if t, ok := ParseHTTPDate(string(val)); ok {
			c.Expires = t
		} else {
			p.warnf("unparseable Expires date %q, attribute dropped", string(val))
		}
	case attrMaxAge:
		if n, err := strconv.ParseInt(string(val), 10, 64); err == nil {
			c.MaxAge = n
		} else {
			p.warnf("invalid Max-Age %q, attribute dropped", string(val))
		}
	case attrDomain:
		c.Domain = string(val)
	case attrPath:
		c.Path = string(val)
	case attrSecure:
		c.Secure = true
	case attrHTTPOnly:
		c.HttpOnly = true
	case attrSameSite:
		if canon, ok := CanonicalSameSite(string(val)); ok {
			c.SameSite = canon
		} else {
			p.warnf("invalid SameSite token %q, attribute dropped", string(val))
		}
	default:
		p.warnf("unrecognized attribute %q ignored", string(name))
	}
}

func (p *Parser) skipOWS() {
	for p.pos < p.length {
		switch p.data[p.pos] {
		case ' ', '\t':
			p.pos++
		default:
			return
		}
	}
}

func (p *Parser) warnf(format string, args ...interface{}) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

// trimOWS trims optional whitespace (SP and HTAB) from both ends of b.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}

// unquote strips one pair of surrounding double quotes. Delimiters that
// appeared inside the quotes were already tolerated by readToken.
func unquote(b []byte) []byte {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		return b[1 : len(b)-1]
	}
	return b
}

// eqFold is a fast ASCII case-insensitive string comparison.
func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
