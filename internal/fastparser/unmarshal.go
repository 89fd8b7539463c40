package fastparser

import "bytes"

// ParseCookies parses data as a Set-Cookie-style header value.
// Uses a stack-allocated Parser to avoid heap allocation.
func ParseCookies(data []byte) []Cookie {
	var p Parser
	initParser(&p, data)
	return p.ParseCookies()
}

// ParseRequestCookies parses data as a Cookie request-header value.
// Uses a stack-allocated Parser to avoid heap allocation.
func ParseRequestCookies(data []byte) []Cookie {
	var p Parser
	initParser(&p, data)
	return p.ParseRequestCookies()
}

// DetectHeaderForm returns "set-cookie" when any token after the first
// pair carries a recognized attribute name, "cookie" otherwise.
func DetectHeaderForm(data []byte) string {
	first := true
	for _, tok := range bytes.Split(data, []byte{';'}) {
		if first {
			first = false
			continue
		}
		tok = trimOWS(tok)
		name := tok
		if eq := bytes.IndexByte(tok, '='); eq >= 0 {
			name = trimOWS(tok[:eq])
		}
		if IsKnownAttr(name) {
			return "set-cookie"
		}
	}
	return "cookie"
}

// Warnings runs a lenient parse over data and returns every issue the
// parser had to tolerate, in input order. An empty result means the
// input was clean; empty input is clean.
func Warnings(data []byte) []string {
	var p Parser
	initParser(&p, data)
	p.ParseCookies()
	return p.warnings
}
