package csvpref

import "strings"

// QuoteMode decides whether the writer must wrap a field in quote
// characters. quotesAlready reports positional context from the caller: the
// field is being quoted regardless of the value, and no mode may revoke
// that. Implementations must be pure and safe for concurrent use.
type QuoteMode interface {
	QuotesRequired(value string, pref *Preference, quotesAlready bool) bool
}

// NormalQuoteMode quotes only when necessary: when the value contains the
// delimiter, the quote character, an end-of-line symbol, or, with the
// surrounding-spaces flag set, leading or trailing whitespace.
type NormalQuoteMode struct{}

// QuotesRequired implements QuoteMode.
func (NormalQuoteMode) QuotesRequired(value string, pref *Preference, quotesAlready bool) bool {
	if quotesAlready {
		return true
	}
	if strings.IndexByte(value, pref.QuoteChar()) >= 0 {
		return true
	}
	if strings.Contains(value, pref.Delimiter()) {
		return true
	}
	if strings.ContainsAny(value, pref.EndOfLine()) {
		return true
	}
	if pref.SurroundingSpacesNeedQuotes() && strings.TrimSpace(value) != value {
		return true
	}
	return false
}

// AlwaysQuoteMode quotes every field unconditionally.
type AlwaysQuoteMode struct{}

// QuotesRequired implements QuoteMode.
func (AlwaysQuoteMode) QuotesRequired(string, *Preference, bool) bool {
	return true
}
