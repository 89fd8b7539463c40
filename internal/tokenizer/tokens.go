// Package tokenizer provides cookie-header tokenization using Shape's
// tokenizer framework.
package tokenizer

// Token type constants for the cookie attribute grammar.
const (
	// Structural tokens
	TokenEquals    = "Equals"    // name/value separator
	TokenSemicolon = "Semicolon" // attribute separator
	TokenComma     = "Comma"     // candidate cookie separator
	TokenOWS       = "OWS"       // run of SP / HTAB

	// Content tokens
	TokenText   = "Text"         // attribute names and unquoted values
	TokenQuoted = "QuotedString" // double-quoted value, quotes included

	// Special
	TokenEOF = "EOF" // End of input
)
