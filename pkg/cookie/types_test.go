package cookie

import (
	"testing"
	"time"
)

func TestNewCookie(t *testing.T) {
	c := NewCookie("session", "abc123")
	if c.Name != "session" || c.Value != "abc123" {
		t.Errorf("pair = %q=%q, want session=abc123", c.Name, c.Value)
	}
	if c.MaxAge != MaxAgeUnset {
		t.Errorf("MaxAge = %d, want unset sentinel", c.MaxAge)
	}
	if !c.Expires.IsZero() || c.Domain != "" || c.Path != "" || c.Secure || c.HttpOnly || c.SameSite != "" {
		t.Errorf("attributes not default-initialized: %+v", c)
	}
}

func TestSetSameSite(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantOK  bool
		wantVal string
	}{
		{name: "canonical Strict", token: "Strict", wantOK: true, wantVal: "Strict"},
		{name: "lowercase strict", token: "strict", wantOK: true, wantVal: "Strict"},
		{name: "uppercase LAX", token: "LAX", wantOK: true, wantVal: "Lax"},
		{name: "mixed nOnE", token: "nOnE", wantOK: true, wantVal: "None"},
		{name: "invalid token", token: "bogus", wantOK: false, wantVal: ""},
		{name: "empty token", token: "", wantOK: false, wantVal: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCookie("a", "1")
			ok := c.SetSameSite(tt.token)
			if ok != tt.wantOK {
				t.Errorf("SetSameSite(%q) = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if c.SameSite != tt.wantVal {
				t.Errorf("SameSite = %q, want %q", c.SameSite, tt.wantVal)
			}
		})
	}
}

func TestSetSameSite_FailureLeavesPriorValue(t *testing.T) {
	c := NewCookie("a", "1")
	if !c.SetSameSite("Lax") {
		t.Fatal("SetSameSite(Lax) failed")
	}
	if c.SetSameSite("bogus") {
		t.Error("SetSameSite(bogus) = true, want false")
	}
	if c.SameSite != SameSiteLax {
		t.Errorf("SameSite = %q, want prior value %q", c.SameSite, SameSiteLax)
	}
}

func TestCookie_Swap(t *testing.T) {
	a := NewCookie("a", "1")
	a.Path = "/a"
	a.MaxAge = 60

	b := NewCookie("b", "2")
	b.Secure = true

	a.Swap(b)

	if a.Name != "b" || a.Value != "2" || !a.Secure || a.MaxAge != MaxAgeUnset {
		t.Errorf("a after swap = %+v, want b's contents", a)
	}
	if b.Name != "a" || b.Value != "1" || b.Path != "/a" || b.MaxAge != 60 {
		t.Errorf("b after swap = %+v, want a's contents", b)
	}
}

func TestCookie_Clone(t *testing.T) {
	c := NewCookie("session", "abc")
	c.Domain = "example.com"
	c.MaxAge = 3600
	c.SetSameSite("Strict")

	dup := c.Clone()
	if !c.Equal(dup) {
		t.Fatalf("clone not equal: %+v vs %+v", c, dup)
	}

	dup.Value = "changed"
	if c.Value != "abc" {
		t.Error("mutating the clone changed the original")
	}

	var nilCookie *Cookie
	if nilCookie.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestCookie_Equal(t *testing.T) {
	base := func() *Cookie {
		c := NewCookie("session", "abc")
		c.Domain = "example.com"
		c.Path = "/"
		c.Expires = time.Date(2021, time.June, 9, 10, 18, 14, 0, time.UTC)
		c.MaxAge = 3600
		c.Secure = true
		c.HttpOnly = true
		c.SameSite = SameSiteLax
		return c
	}

	t.Run("identical records equal", func(t *testing.T) {
		if !base().Equal(base()) {
			t.Error("identical records compare unequal")
		}
	})

	t.Run("construction order irrelevant", func(t *testing.T) {
		a := NewCookie("session", "abc")
		a.SetSameSite("lax")
		a.MaxAge = 3600
		a.Secure = true
		a.HttpOnly = true
		a.Path = "/"
		a.Domain = "example.com"
		a.Expires = time.Date(2021, time.June, 9, 10, 18, 14, 0, time.UTC)
		if !a.Equal(base()) {
			t.Error("same fields set in different order compare unequal")
		}
	})

	t.Run("domain case-insensitive", func(t *testing.T) {
		a := base()
		a.Domain = "EXAMPLE.com"
		if !a.Equal(base()) {
			t.Error("domain comparison must be case-insensitive")
		}
	})

	t.Run("expires compares instants", func(t *testing.T) {
		a := base()
		a.Expires = a.Expires.In(time.FixedZone("X", 3600))
		if !a.Equal(base()) {
			t.Error("same instant in a different zone must compare equal")
		}
	})

	mutations := []struct {
		name   string
		mutate func(c *Cookie)
	}{
		{"name", func(c *Cookie) { c.Name = "other" }},
		{"value", func(c *Cookie) { c.Value = "other" }},
		{"domain", func(c *Cookie) { c.Domain = "other.com" }},
		{"path", func(c *Cookie) { c.Path = "/other" }},
		{"expires", func(c *Cookie) { c.Expires = c.Expires.Add(time.Second) }},
		{"maxAge", func(c *Cookie) { c.MaxAge = 0 }},
		{"maxAge to unset", func(c *Cookie) { c.MaxAge = MaxAgeUnset }},
		{"secure", func(c *Cookie) { c.Secure = false }},
		{"httpOnly", func(c *Cookie) { c.HttpOnly = false }},
		{"sameSite", func(c *Cookie) { c.SameSite = SameSiteNone }},
	}
	for _, tt := range mutations {
		t.Run("unequal after changing "+tt.name, func(t *testing.T) {
			a := base()
			tt.mutate(a)
			if a.Equal(base()) {
				t.Errorf("records still equal after changing %s", tt.name)
			}
		})
	}

	t.Run("nil handling", func(t *testing.T) {
		var a, b *Cookie
		if !a.Equal(b) {
			t.Error("two nil cookies should compare equal")
		}
		if base().Equal(nil) {
			t.Error("non-nil vs nil should compare unequal")
		}
	})
}

func TestCookies_Get(t *testing.T) {
	cs := ParseCookies([]byte("a=1, b=2, a=3"))
	if got := cs.Get("b"); got == nil || got.Value != "2" {
		t.Errorf("Get(b) = %+v, want value 2", got)
	}
	if got := cs.Get("a"); got == nil || got.Value != "1" {
		t.Errorf("Get(a) = %+v, want first occurrence with value 1", got)
	}
	if got := cs.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %+v, want nil", got)
	}
}

func TestCookies_CloneAndEqual(t *testing.T) {
	cs := ParseCookies([]byte("a=1; Secure, b=2"))
	clone := cs.Clone()
	if !cs.Equal(clone) {
		t.Fatal("clone not equal to original")
	}
	clone[0].Value = "changed"
	if cs.Equal(clone) {
		t.Error("lists still equal after mutating clone")
	}
	if cs.Equal(cs[:1]) {
		t.Error("lists of different length should compare unequal")
	}

	var nilList Cookies
	if nilList.Clone() != nil {
		t.Error("Clone of nil list should be nil")
	}
}
