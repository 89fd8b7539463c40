package fastparser

import "strings"

// Attribute identifiers for the recognized Set-Cookie attribute set.
// Anything else is attrUnknown and tolerated per the forward-compat policy.
const (
	attrUnknown = iota
	attrExpires
	attrMaxAge
	attrDomain
	attrPath
	attrSecure
	attrHTTPOnly
	attrSameSite
)

// Lookup keyed by ASCII-lowercase attribute name.
//
// The Go compiler optimizes map lookups with string([]byte) keys to avoid
// allocating the temporary string (the mapaccess optimization), so
// internAttr is zero-alloc for recognized attributes.
var attrNames = map[string]int{
	"expires":  attrExpires,
	"max-age":  attrMaxAge,
	"domain":   attrDomain,
	"path":     attrPath,
	"secure":   attrSecure,
	"httponly": attrHTTPOnly,
	"samesite": attrSameSite,
}

var sameSiteTokens = map[string]string{
	"strict": SameSiteStrict,
	"lax":    SameSiteLax,
	"none":   SameSiteNone,
}

// internAttr matches an attribute name case-insensitively against the
// recognized set. The longest recognized name is 8 bytes, so lowering
// happens in a stack buffer.
func internAttr(b []byte) int {
	if len(b) > 8 {
		return attrUnknown
	}
	var lower [8]byte
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
	if a, ok := attrNames[string(lower[:len(b)])]; ok {
		return a
	}
	return attrUnknown
}

// IsKnownAttr reports whether name is one of the recognized Set-Cookie
// attribute names, matched case-insensitively.
func IsKnownAttr(name []byte) bool {
	return internAttr(name) != attrUnknown
}

// CanonicalSameSite validates a SameSite token case-insensitively and
// returns its canonical-cased form. ok is false for anything outside
// Strict, Lax and None.
func CanonicalSameSite(token string) (string, bool) {
	canon, ok := sameSiteTokens[strings.ToLower(token)]
	return canon, ok
}
