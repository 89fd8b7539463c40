package fastparser

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// httpOnlyPrefix is curl's convention for flagging HttpOnly cookies in a
// Netscape cookie file: the domain field is prefixed inside a comment.
const httpOnlyPrefix = "#HttpOnly_"

// ParseNetscape parses a curl/wget cookies.txt file with best-effort
// extraction, matching the warning discipline of the header parser.
// Malformed lines are skipped with a warning; comments and blank lines
// are ignored.
//
// Line format, tab-separated:
//
//	domain  includeSubdomains  path  secure  expires-unix  name  value
func ParseNetscape(data []byte) *ParseResult {
	result := &ParseResult{}

	lineNo := 0
	for len(data) > 0 {
		lineNo++
		var line []byte
		if nl := bytes.IndexByte(data, '\n'); nl >= 0 {
			line, data = data[:nl], data[nl+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimRight(line, "\r")

		httpOnly := false
		if bytes.HasPrefix(line, []byte(httpOnlyPrefix)) {
			httpOnly = true
			line = line[len(httpOnlyPrefix):]
		}
		if len(bytes.TrimSpace(line)) == 0 || line[0] == '#' {
			continue
		}

		fields := bytes.Split(line, []byte{'\t'})
		if len(fields) != 7 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: expected 7 tab-separated fields, got %d, line skipped", lineNo, len(fields)))
			continue
		}

		c := NewCookie(string(fields[5]), string(fields[6]))
		c.Domain = string(fields[0])
		c.Path = string(fields[2])
		c.Secure = eqFold(string(fields[3]), "TRUE")
		c.HttpOnly = httpOnly

		// Field 1 (includeSubdomains) is redundant with the domain's
		// leading dot; it is accepted and discarded.

		expiry, err := strconv.ParseInt(string(fields[4]), 10, 64)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: invalid expiry %q, treated as session cookie", lineNo, string(fields[4])))
			expiry = 0
		}
		if expiry > 0 {
			c.Expires = time.Unix(expiry, 0).UTC()
		}

		result.Cookies = append(result.Cookies, c)
	}
	return result
}

// AppendNetscape appends c as one Netscape cookie-file line, including
// the trailing newline. Session cookies serialize with expiry 0.
func AppendNetscape(buf []byte, c *Cookie) []byte {
	if c.HttpOnly {
		buf = append(buf, httpOnlyPrefix...)
	}
	buf = append(buf, c.Domain...)
	buf = append(buf, '\t')
	if len(c.Domain) > 0 && c.Domain[0] == '.' {
		buf = append(buf, "TRUE"...)
	} else {
		buf = append(buf, "FALSE"...)
	}
	buf = append(buf, '\t')
	if c.Path != "" {
		buf = append(buf, c.Path...)
	} else {
		buf = append(buf, '/')
	}
	buf = append(buf, '\t')
	if c.Secure {
		buf = append(buf, "TRUE"...)
	} else {
		buf = append(buf, "FALSE"...)
	}
	buf = append(buf, '\t')
	if c.Expires.IsZero() {
		buf = append(buf, '0')
	} else {
		buf = strconv.AppendInt(buf, c.Expires.Unix(), 10)
	}
	buf = append(buf, '\t')
	buf = append(buf, c.Name...)
	buf = append(buf, '\t')
	buf = append(buf, c.Value...)
	return append(buf, '\n')
}
