package cookie

import (
	"fmt"

	"github.com/shapestone/shape-cookie/internal/fastparser"
)

// ParseCookies parses a Set-Cookie-style header value into an ordered
// cookie list. The input may hold several cookies combined into one
// string: a comma followed by whitespace and a name=value token starts a
// new cookie, except inside an Expires date, whose own comma
// ("Expires=Wed, 09 Jun 2021 10:18:14 GMT") never splits.
//
// Parsing never fails. Empty or whitespace-only input yields an empty
// list; a malformed attribute is dropped while the rest of its cookie
// stays intact; unrecognized attribute names are ignored for forward
// compatibility. Use UnmarshalLenient to observe what was dropped.
func ParseCookies(data []byte) Cookies {
	return convertCookies(fastparser.ParseCookies(data))
}

// ParseRequestCookies parses the simple Cookie request-header form,
// where every ";"-separated name=value pair is its own cookie and no
// attributes occur. Like ParseCookies it never fails.
func ParseRequestCookies(data []byte) Cookies {
	return convertCookies(fastparser.ParseRequestCookies(data))
}

// Unmarshal parses cookie wire-format data and stores the result in v.
//
// v must be a *Cookie (receives the first cookie in the input) or a
// *Cookies (receives all of them).
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return fmt.Errorf("cookie: Unmarshal(nil)")
	}

	// Check for Unmarshaler interface
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalCookie(data)
	}

	switch target := v.(type) {
	case *Cookie:
		c, err := UnmarshalCookie(data)
		if err != nil {
			return err
		}
		*target = *c
		return nil

	case *Cookies:
		*target = ParseCookies(data)
		return nil

	default:
		return fmt.Errorf("cookie: Unmarshal unsupported type %T (expected *Cookie or *Cookies)", v)
	}
}

// UnmarshalCookie parses data and returns its first cookie. It errors
// only when the input holds no cookie at all.
func UnmarshalCookie(data []byte) (*Cookie, error) {
	cookies := ParseCookies(data)
	if len(cookies) == 0 {
		return nil, fmt.Errorf("cookie: no cookie found in input")
	}
	return &cookies[0], nil
}

// DetectHeaderForm returns "set-cookie" when the input carries
// recognized attributes after its first pair, "cookie" otherwise.
func DetectHeaderForm(data []byte) string {
	return fastparser.DetectHeaderForm(data)
}

func convertCookies(internal []fastparser.Cookie) Cookies {
	if len(internal) == 0 {
		return nil
	}
	cookies := make(Cookies, len(internal))
	for i, c := range internal {
		cookies[i] = convertCookie(c)
	}
	return cookies
}

func convertCookie(c fastparser.Cookie) Cookie {
	return Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  c.Expires,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		SameSite: c.SameSite,
	}
}

func toInternal(c *Cookie) fastparser.Cookie {
	return fastparser.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  c.Expires,
		MaxAge:   c.MaxAge,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
		SameSite: c.SameSite,
	}
}

func canonicalSameSite(token string) (string, bool) {
	return fastparser.CanonicalSameSite(token)
}
