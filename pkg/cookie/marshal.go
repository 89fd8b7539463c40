package cookie

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// Marshal returns the wire-format encoding of v.
//
// v must be a *Cookie or Cookies. A single cookie serializes in Full
// form; a list serializes as a legacy combined header with cookies
// joined by ", " in first-appearance order.
//
// Marshal uses a sync.Pool buffer internally for zero-alloc serialization.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("cookie: Marshal(nil)")
	}

	// Check for Marshaler interface
	if m, ok := v.(Marshaler); ok {
		return m.MarshalCookie()
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]

	switch c := v.(type) {
	case *Cookie:
		buf = appendCookie(buf, c, Full)
	case Cookies:
		buf = appendCookies(buf, c)
	default:
		*bp = buf
		bufPool.Put(bp)
		return nil, fmt.Errorf("cookie: Marshal unsupported type %T (expected *Cookie or Cookies)", v)
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}
