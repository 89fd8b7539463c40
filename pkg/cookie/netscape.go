package cookie

import "github.com/shapestone/shape-cookie/internal/fastparser"

// netscapeHeader is the comment curl writes at the top of cookie files.
const netscapeHeader = "# Netscape HTTP Cookie File\n"

// ParseNetscapeFile parses a curl/wget cookies.txt file and returns a
// ParseResult with best-effort extraction, matching the output format of
// UnmarshalLenient.
//
// Each data line is tab-separated:
//
//	domain  includeSubdomains  path  secure  expires-unix  name  value
//
// Comment lines and blank lines are skipped, except curl's
// "#HttpOnly_" domain prefix, which sets the HttpOnly flag. Lines that
// do not have exactly seven fields are skipped with a warning; a
// non-numeric expiry degrades to a session cookie with a warning. The
// file format has no Max-Age or SameSite column, so those attributes
// are always unset on the result.
func ParseNetscapeFile(data []byte) *ParseResult {
	internal := fastparser.ParseNetscape(data)
	return &ParseResult{
		Cookies:  convertCookies(internal.Cookies),
		Warnings: internal.Warnings,
	}
}

// MarshalNetscape serializes cookies as a curl-compatible cookies.txt
// file, header comment included. Session cookies are written with
// expiry 0.
func MarshalNetscape(cs Cookies) []byte {
	buf := []byte(netscapeHeader)
	for i := range cs {
		internal := toInternal(&cs[i])
		buf = fastparser.AppendNetscape(buf, &internal)
	}
	return buf
}
