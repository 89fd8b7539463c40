// Package cookie provides HTTP cookie header parsing and serialization
// per RFC 6265, including the Max-Age and SameSite attributes and the
// legacy combined-header form where several Set-Cookie entries share one
// comma-separated string.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call creates its own parser instance with no shared
// mutable state. A single *Cookie value is owned by one goroutine unless
// externally synchronized.
//
// # Parsing APIs
//
// The package provides multiple parsing paths:
//
//   - ParseCookies/ParseRequestCookies - Fast direct parsing
//   - Parse/ParseReader - AST-based parsing via shape-core
//   - UnmarshalLenient - Best-effort parsing with warnings
//   - NewDecoder - Streaming io.Reader-based parsing
//
// Parsing is best-effort throughout: malformed attributes are dropped
// without failing the cookie they belong to, and the only error channel
// from the core parse path is the boolean result of SetSameSite.
package cookie

import (
	"math"
	"strings"
	"time"
)

// MaxAgeUnset is the sentinel for an absent Max-Age attribute. It is
// distinct from zero: Max-Age=0 is a valid value meaning expire now.
const MaxAgeUnset int64 = math.MinInt64

// Canonical SameSite tokens as stored by SetSameSite.
const (
	SameSiteStrict = "Strict"
	SameSiteLax    = "Lax"
	SameSiteNone   = "None"
)

// Cookie represents one HTTP cookie with its RFC 6265 attributes.
// The zero value is NOT ready to use because MaxAge would read as a
// literal zero; construct with NewCookie or the parsing functions.
type Cookie struct {
	Name  string
	Value string

	Domain  string    // optional; compared case-insensitively
	Path    string    // optional
	Expires time.Time // zero value means no Expires attribute

	// MaxAge is MaxAgeUnset when absent. When both MaxAge and Expires
	// are present, MaxAge takes precedence per RFC 6265 §4.1.2.2.
	MaxAge   int64
	Secure   bool
	HttpOnly bool

	// SameSite holds the canonical token "Strict", "Lax" or "None",
	// or "" when unset.
	SameSite string
}

// Cookies is an ordered list of cookies in first-appearance order.
type Cookies []Cookie

// NewCookie returns a cookie with the given name and value and every
// attribute unset, including the MaxAge sentinel.
func NewCookie(name, value string) *Cookie {
	return &Cookie{Name: name, Value: value, MaxAge: MaxAgeUnset}
}

// SetSameSite validates token case-insensitively against Strict, Lax
// and None. On success it stores the canonical-cased token and returns
// true; otherwise the previous value is left untouched and it returns
// false. Invalid input never panics.
func (c *Cookie) SetSameSite(token string) bool {
	canon, ok := canonicalSameSite(token)
	if !ok {
		return false
	}
	c.SameSite = canon
	return true
}

// Swap exchanges the contents of c and other in constant time.
func (c *Cookie) Swap(other *Cookie) {
	*c, *other = *other, *c
}

// Equal reports whether c and other match in every field, not just the
// RFC-minimal (name, domain, path) identity. Domain comparison is
// case-insensitive; Expires compares instants; everything else is exact.
func (c *Cookie) Equal(other *Cookie) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Name == other.Name &&
		c.Value == other.Value &&
		strings.EqualFold(c.Domain, other.Domain) &&
		c.Path == other.Path &&
		c.Expires.Equal(other.Expires) &&
		c.MaxAge == other.MaxAge &&
		c.Secure == other.Secure &&
		c.HttpOnly == other.HttpOnly &&
		c.SameSite == other.SameSite
}

// Clone returns a copy of c.
func (c *Cookie) Clone() *Cookie {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}

// Get returns the first cookie with the given name, or nil.
func (cs Cookies) Get(name string) *Cookie {
	for i := range cs {
		if cs[i].Name == name {
			return &cs[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the list.
func (cs Cookies) Clone() Cookies {
	if cs == nil {
		return nil
	}
	clone := make(Cookies, len(cs))
	copy(clone, cs)
	return clone
}

// Equal reports whether both lists hold field-equal cookies in the same order.
func (cs Cookies) Equal(other Cookies) bool {
	if len(cs) != len(other) {
		return false
	}
	for i := range cs {
		if !cs[i].Equal(&other[i]) {
			return false
		}
	}
	return true
}

// Marshaler is the interface implemented by types that can marshal
// themselves into cookie wire format.
type Marshaler interface {
	MarshalCookie() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that can unmarshal
// a cookie wire-format description of themselves.
type Unmarshaler interface {
	UnmarshalCookie([]byte) error
}

// ParseResult holds the result of lenient parsing.
type ParseResult struct {
	Cookies  Cookies  // cookies in first-appearance order
	Warnings []string // non-fatal issues, one per dropped attribute
}
