package csvpref

// Preference is an immutable description of a delimited-text format: the
// quote character, the field delimiter, the record terminator, and the
// strategies governing escaping, quoting decisions, and comment detection.
// A Preference is only obtainable through a Builder, which validates every
// invariant before construction, so a value in hand is always
// self-consistent. Preferences are safe for unrestricted concurrent use.
type Preference struct {
	quoteChar                   byte
	delimiter                   string
	endOfLine                   string
	surroundingSpacesNeedQuotes bool
	commentMatcher              CommentMatcher
	encoder                     Encoder
	quoteMode                   QuoteMode
	quoteEscapeChar             byte
}

// Ready-made preferences for common dialects. All use default optional
// values: no surrounding-space quoting, no comment matcher, the default
// encoder and quote mode, and a quote-escape char equal to the quote char.
var (
	// StandardPreference is the RFC 4180 dialect: quote '"', delimiter ',', CRLF record terminator.
	StandardPreference = mustBuild(NewBuilder('"', ",", "\r\n"))
	// ExcelPreference matches spreadsheet exports on Unix-style line endings.
	ExcelPreference = mustBuild(NewBuilder('"', ",", "\n"))
	// ExcelNorthEuropePreference matches spreadsheet exports in locales where ',' is the decimal separator.
	ExcelNorthEuropePreference = mustBuild(NewBuilder('"', ";", "\n"))
	// TabPreference is the tab-separated dialect.
	TabPreference = mustBuild(NewBuilder('"', "\t", "\n"))
)

func mustBuild(b *Builder) *Preference {
	p, err := b.Build()
	if err != nil {
		panic("csvpref: preset preference is invalid: " + err.Error())
	}
	return p
}

// QuoteChar returns the character that delimits quoted fields.
func (p *Preference) QuoteChar() byte {
	return p.quoteChar
}

// Delimiter returns the field separator sequence.
func (p *Preference) Delimiter() string {
	return p.delimiter
}

// EndOfLine returns the record terminator sequence.
func (p *Preference) EndOfLine() string {
	return p.endOfLine
}

// SurroundingSpacesNeedQuotes reports whether leading or trailing whitespace
// forces a field to be quoted.
func (p *Preference) SurroundingSpacesNeedQuotes() bool {
	return p.surroundingSpacesNeedQuotes
}

// CommentMatcher returns the comment-detection strategy, or nil when comment
// skipping is disabled.
func (p *Preference) CommentMatcher() CommentMatcher {
	return p.commentMatcher
}

// Encoder returns the escaping strategy. Never nil.
func (p *Preference) Encoder() Encoder {
	return p.encoder
}

// QuoteMode returns the quoting-decision strategy. Never nil.
func (p *Preference) QuoteMode() QuoteMode {
	return p.quoteMode
}

// QuoteEscapeChar returns the character that escapes the quote character
// inside quoted text. Equals QuoteChar unless overridden.
func (p *Preference) QuoteEscapeChar() byte {
	return p.quoteEscapeChar
}
