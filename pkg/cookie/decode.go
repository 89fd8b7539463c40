package cookie

import (
	"bufio"
	"io"
	"strings"
)

// Decoder reads cookies from an input stream carrying one cookie header
// value per line, the format Encoder writes. A single Decoder is not
// safe for concurrent use; create one per goroutine or serialize access
// externally.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a new decoder that reads from r.
// The decoder uses buffered reading for efficient parsing.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the next cookie from the stream and stores it in c.
// Lines yielding no cookie (blank lines, separator noise) are skipped.
// Returns io.EOF when the stream is exhausted.
func (dec *Decoder) Decode(c *Cookie) error {
	for {
		line, err := dec.readLine()
		if err != nil {
			return err
		}
		cookies := ParseCookies([]byte(line))
		if len(cookies) == 0 {
			continue
		}
		*c = cookies[0]
		return nil
	}
}

// DecodeAll reads the remaining stream and returns every cookie found,
// in input order. A clean end of stream is not an error.
func (dec *Decoder) DecodeAll() (Cookies, error) {
	var all Cookies
	for {
		line, err := dec.readLine()
		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return all, err
		}
		all = append(all, ParseCookies([]byte(line))...)
	}
}

// readLine reads a line from the buffered reader, stripping CRLF or LF.
func (dec *Decoder) readLine() (string, error) {
	line, err := dec.r.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
