package fastparser

// ParseResult holds the result of lenient parsing.
type ParseResult struct {
	Cookies  []Cookie
	Warnings []string
}

// LenientParser exposes the parser's best-effort behaviour together with
// the warnings it accumulates. Parsing itself is always lenient; this
// type exists for callers that want to inspect what was dropped.
type LenientParser struct {
	p Parser
}

// NewLenientParser creates a new lenient parser for the given data.
func NewLenientParser(data []byte) *LenientParser {
	lp := &LenientParser{}
	initParser(&lp.p, data)
	return lp
}

// Parse parses the header with best-effort extraction. Every dropped or
// ignored attribute produces one warning, in input order.
func (lp *LenientParser) Parse() *ParseResult {
	cookies := lp.p.ParseCookies()
	return &ParseResult{
		Cookies:  cookies,
		Warnings: lp.p.warnings,
	}
}
