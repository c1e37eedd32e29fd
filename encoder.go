package csvpref

import "strings"

// Encoder converts a raw field value into the text placed inside quotes.
// Implementations must be deterministic, side-effect-free, and safe for
// concurrent use; a Preference shares its encoder across sessions.
type Encoder interface {
	Encode(value string, pref *Preference) string
}

// DefaultEncoder escapes every occurrence of the quote character by
// prefixing it with the preference's quote-escape character. With the
// default escape char this doubles embedded quotes.
type DefaultEncoder struct{}

// Encode returns value with each quote character escaped. Values without a
// quote character are returned unchanged, without allocation.
func (DefaultEncoder) Encode(value string, pref *Preference) string {
	quote := pref.QuoteChar()
	if strings.IndexByte(value, quote) < 0 {
		return value
	}

	escape := pref.QuoteEscapeChar()
	var sb strings.Builder
	sb.Grow(len(value) + 2)

	start := 0
	for i := 0; i < len(value); i++ {
		if value[i] == quote {
			sb.WriteString(value[start:i])
			sb.WriteByte(escape)
			sb.WriteByte(quote)
			start = i + 1
		}
	}
	sb.WriteString(value[start:])
	return sb.String()
}
