package fastparser

import "time"

// TimeFormat is the canonical HTTP-date layout used when serializing the
// Expires attribute (IMF-fixdate, always GMT).
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Layouts servers actually emit, most common first. The dash variant
// ("Mon, 02-Jan-2006") predates RFC 6265 but is still seen in the wild.
var dateLayouts = []string{
	TimeFormat,
	time.RFC1123,
	"Mon, 02-Jan-2006 15:04:05 MST",
	time.RFC850,
	time.ANSIC,
}

// ParseHTTPDate parses an HTTP-date, trying each accepted layout in turn.
// The result is normalized to UTC.
func ParseHTTPDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// AppendHTTPDate appends t formatted as an IMF-fixdate in GMT.
func AppendHTTPDate(buf []byte, t time.Time) []byte {
	return t.UTC().AppendFormat(buf, TimeFormat)
}
