package cookie

import (
	"strconv"

	"github.com/shapestone/shape-cookie/internal/fastparser"
)

// RawForm selects how much of a cookie ToRawForm serializes.
type RawForm int

const (
	// NameAndValueOnly emits just "name=value".
	NameAndValueOnly RawForm = iota
	// Full emits name=value plus every set attribute.
	Full
)

// ToRawForm returns the wire-format serialization of c.
//
// Attribute order is deterministic and part of the wire contract:
// name=value, Expires, Max-Age, Domain, Path, Secure, HttpOnly,
// SameSite, separated by "; ". Unset attributes (zero Expires, the
// MaxAge sentinel, empty strings, false flags) are omitted. Values are
// emitted as-is: delimiter characters inside a value are not escaped,
// matching the parser's quoted-value tolerance.
func (c *Cookie) ToRawForm(form RawForm) []byte {
	return appendCookie(nil, c, form)
}

// appendCookie serializes c in the given form, attributes in canonical order.
func appendCookie(buf []byte, c *Cookie, form RawForm) []byte {
	buf = append(buf, c.Name...)
	buf = append(buf, '=')
	buf = append(buf, c.Value...)
	if form == NameAndValueOnly {
		return buf
	}

	if !c.Expires.IsZero() {
		buf = append(buf, "; Expires="...)
		buf = fastparser.AppendHTTPDate(buf, c.Expires)
	}
	if c.MaxAge != MaxAgeUnset {
		buf = append(buf, "; Max-Age="...)
		buf = strconv.AppendInt(buf, c.MaxAge, 10)
	}
	if c.Domain != "" {
		buf = append(buf, "; Domain="...)
		buf = append(buf, c.Domain...)
	}
	if c.Path != "" {
		buf = append(buf, "; Path="...)
		buf = append(buf, c.Path...)
	}
	if c.Secure {
		buf = append(buf, "; Secure"...)
	}
	if c.HttpOnly {
		buf = append(buf, "; HttpOnly"...)
	}
	if c.SameSite != "" {
		buf = append(buf, "; SameSite="...)
		buf = append(buf, c.SameSite...)
	}
	return buf
}

// appendCookies serializes a combined header: full cookies joined with
// ", " in first-appearance order, re-parseable by ParseCookies.
func appendCookies(buf []byte, cs Cookies) []byte {
	for i := range cs {
		if i > 0 {
			buf = append(buf, ',', ' ')
		}
		buf = appendCookie(buf, &cs[i], Full)
	}
	return buf
}
