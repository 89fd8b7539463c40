package fastparser

import (
	"testing"
	"time"
)

func TestParseHTTPDate(t *testing.T) {
	want := time.Date(2021, time.June, 9, 10, 18, 14, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"imf-fixdate", "Wed, 09 Jun 2021 10:18:14 GMT"},
		{"rfc1123 with zone", "Wed, 09 Jun 2021 10:18:14 UTC"},
		{"dash variant", "Wed, 09-Jun-2021 10:18:14 GMT"},
		{"rfc850", "Wednesday, 09-Jun-21 10:18:14 GMT"},
		{"ansic", "Wed Jun  9 10:18:14 2021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseHTTPDate(tt.input)
			if !ok {
				t.Fatalf("ParseHTTPDate(%q) failed", tt.input)
			}
			if !got.Equal(want) {
				t.Errorf("ParseHTTPDate(%q) = %v, want %v", tt.input, got, want)
			}
			if got.Location() != time.UTC {
				t.Errorf("result not normalized to UTC: %v", got)
			}
		})
	}
}

func TestParseHTTPDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2021-06-09T10:18:14Z", "Wed 09 Jun"} {
		if _, ok := ParseHTTPDate(input); ok {
			t.Errorf("ParseHTTPDate(%q) succeeded, want failure", input)
		}
	}
}

func TestAppendHTTPDate(t *testing.T) {
	in := time.Date(2021, time.June, 9, 12, 18, 14, 0, time.FixedZone("CEST", 2*3600))
	got := string(AppendHTTPDate(nil, in))
	want := "Wed, 09 Jun 2021 10:18:14 GMT"
	if got != want {
		t.Errorf("AppendHTTPDate = %q, want %q", got, want)
	}
}

func TestHTTPDate_RoundTrip(t *testing.T) {
	orig := time.Date(2030, time.December, 31, 23, 59, 59, 0, time.UTC)
	got, ok := ParseHTTPDate(string(AppendHTTPDate(nil, orig)))
	if !ok {
		t.Fatal("reparse of serialized date failed")
	}
	if !got.Equal(orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}
