package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for the cookie attribute grammar.
// The grammar is flat, so the matchers work at the delimiter level:
// 1. Structural single characters (=, ;, ,)
// 2. OWS runs (significant: they drive the comma boundary heuristic)
// 3. Quoted strings (delimiters inside quotes are not structural)
// 4. Generic text (names, values, date fragments)
//
// Note: the default whitespace skipper is not used because whitespace
// after a comma is what distinguishes a cookie boundary from a comma
// embedded in an attribute value.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenEquals, "="),
		tokenizer.StringMatcherFunc(TokenSemicolon, ";"),
		tokenizer.StringMatcherFunc(TokenComma, ","),

		OWSMatcher(),

		// Quoted string before generic text
		QuotedStringMatcher(),

		// Generic text token (everything else until a delimiter)
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates a cookie tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// OWSMatcher matches a run of SP or HTAB characters.
func OWSMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || (r != ' ' && r != '\t') {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenOWS, value)
	}
}

// QuotedStringMatcher matches a double-quoted string, quotes included.
// An unterminated quote consumes the rest of the input; the parser
// tolerates unescaped delimiters inside, so no escape handling is needed.
func QuotedStringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '"' {
			return nil
		}
		stream.NextChar()
		value := []rune{'"'}
		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			stream.NextChar()
			value = append(value, r)
			if r == '"' {
				break
			}
		}
		return tokenizer.NewToken(TokenQuoted, value)
	}
}

// TextMatcher matches any sequence of characters until a structural
// delimiter, whitespace, quote, or EOS.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == '=' || r == ';' || r == ',' || r == ' ' || r == '\t' || r == '"' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}
		if len(value) == 0 {
			return nil
		}
		return tokenizer.NewToken(TokenText, value)
	}
}
