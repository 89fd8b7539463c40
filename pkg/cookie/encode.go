package cookie

import (
	"fmt"
	"io"
)

// Encoder writes cookies to an output stream, one Set-Cookie-style line
// per cookie (CRLF-terminated, Full form).
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of v to the stream.
// v must be a *Cookie or Cookies; a list becomes one line per cookie.
func (enc *Encoder) Encode(v interface{}) error {
	switch c := v.(type) {
	case *Cookie:
		return enc.encodeOne(c)
	case Cookies:
		for i := range c {
			if err := enc.encodeOne(&c[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("cookie: Encode unsupported type %T (expected *Cookie or Cookies)", v)
	}
}

func (enc *Encoder) encodeOne(c *Cookie) error {
	data := appendCookie(nil, c, Full)
	data = append(data, '\r', '\n')
	_, err := enc.w.Write(data)
	return err
}
