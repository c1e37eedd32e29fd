package csvpref

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when two special characters of the format clash.
	ErrInvalidArgument = errors.New("csvpref: invalid argument")
	// ErrMissingValue is returned when a required value or strategy is absent.
	ErrMissingValue = errors.New("csvpref: missing required value")
)

// Builder accumulates the fields of a Preference and validates them in a
// single Build call. Setters chain; a setter that rejects its argument
// records the failure on the builder, and Err or Build report it. A Builder
// is single-owner and short-lived: build once, then discard it. After a
// failed Build the builder must not be reused.
type Builder struct {
	quoteChar                   byte
	delimiter                   string
	endOfLine                   string
	surroundingSpacesNeedQuotes bool
	commentMatcher              CommentMatcher
	encoder                     Encoder
	quoteMode                   QuoteMode
	quoteEscapeChar             byte
	quoteEscapeSet              bool

	err error
}

// NewBuilder creates a Builder from the three required values. All optional
// fields take their defaults: no surrounding-space quoting, no comment
// matcher, DefaultEncoder, NormalQuoteMode, and a quote-escape char equal to
// quoteChar.
func NewBuilder(quoteChar byte, delimiter, endOfLine string) *Builder {
	return &Builder{
		quoteChar: quoteChar,
		delimiter: delimiter,
		endOfLine: endOfLine,
		encoder:   DefaultEncoder{},
		quoteMode: NormalQuoteMode{},
	}
}

// NewBuilderFrom creates a Builder pre-populated with every field of an
// existing Preference, so the result is a full override of the source rather
// than a reset to defaults. Strategy instances are shared by reference;
// strategies are stateless.
func NewBuilderFrom(pref *Preference) *Builder {
	return &Builder{
		quoteChar:                   pref.quoteChar,
		delimiter:                   pref.delimiter,
		endOfLine:                   pref.endOfLine,
		surroundingSpacesNeedQuotes: pref.surroundingSpacesNeedQuotes,
		commentMatcher:              pref.commentMatcher,
		encoder:                     pref.encoder,
		quoteMode:                   pref.quoteMode,
		quoteEscapeChar:             pref.quoteEscapeChar,
		quoteEscapeSet:              true,
	}
}

// SurroundingSpacesNeedQuotes sets whether leading or trailing whitespace
// forces a field to be quoted.
func (b *Builder) SurroundingSpacesNeedQuotes(v bool) *Builder {
	b.surroundingSpacesNeedQuotes = v
	return b
}

// SkipComments enables comment skipping with the supplied matcher. A nil
// matcher is rejected immediately; leaving SkipComments uncalled is the only
// way to disable comment skipping.
func (b *Builder) SkipComments(m CommentMatcher) *Builder {
	if m == nil {
		b.fail(fmt.Errorf("%w: comment matcher is nil", ErrMissingValue))
		return b
	}
	b.commentMatcher = m
	return b
}

// UseEncoder replaces the escaping strategy. A nil encoder is rejected
// immediately.
func (b *Builder) UseEncoder(e Encoder) *Builder {
	if e == nil {
		b.fail(fmt.Errorf("%w: encoder is nil", ErrMissingValue))
		return b
	}
	b.encoder = e
	return b
}

// UseQuoteMode replaces the quoting-decision strategy. A nil quote mode is
// rejected immediately.
func (b *Builder) UseQuoteMode(m QuoteMode) *Builder {
	if m == nil {
		b.fail(fmt.Errorf("%w: quote mode is nil", ErrMissingValue))
		return b
	}
	b.quoteMode = m
	return b
}

// SetQuoteEscapeChar overrides the character used to escape the quote
// character inside quoted text. Distinctness from the delimiter is checked
// in Build alongside the other cross-field invariants.
func (b *Builder) SetQuoteEscapeChar(c byte) *Builder {
	b.quoteEscapeChar = c
	b.quoteEscapeSet = true
	return b
}

// Err reports the first setter failure recorded on the builder, before Build
// is ever called. It returns nil when every setter so far accepted its
// argument.
func (b *Builder) Err() error {
	return b.err
}

// Build validates the accumulated configuration and returns the immutable
// Preference. On failure it returns an error wrapping ErrInvalidArgument or
// ErrMissingValue identifying the violated invariant; no Preference is
// constructed and the builder must not be reused.
func (b *Builder) Build() (*Preference, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Default resolution happens before invariant checks, so an unset
	// escape char can only clash with the delimiter if the quote char
	// itself does, which the first check already rejects.
	if !b.quoteEscapeSet {
		b.quoteEscapeChar = b.quoteChar
	}

	if b.delimiter == "" {
		return nil, b.fail(fmt.Errorf("%w: delimiter is empty", ErrMissingValue))
	}
	if strings.IndexByte(b.delimiter, b.quoteChar) >= 0 {
		return nil, b.fail(fmt.Errorf("%w: quote character %q and delimiter %q must not be the same character",
			ErrInvalidArgument, b.quoteChar, b.delimiter))
	}
	if strings.IndexByte(b.delimiter, b.quoteEscapeChar) >= 0 {
		return nil, b.fail(fmt.Errorf("%w: quote escape character %q and delimiter %q must not be the same character",
			ErrInvalidArgument, b.quoteEscapeChar, b.delimiter))
	}
	if b.endOfLine == "" {
		return nil, b.fail(fmt.Errorf("%w: end-of-line symbols are empty", ErrMissingValue))
	}
	if b.encoder == nil {
		return nil, b.fail(fmt.Errorf("%w: encoder is nil", ErrMissingValue))
	}
	if b.quoteMode == nil {
		return nil, b.fail(fmt.Errorf("%w: quote mode is nil", ErrMissingValue))
	}

	return &Preference{
		quoteChar:                   b.quoteChar,
		delimiter:                   b.delimiter,
		endOfLine:                   b.endOfLine,
		surroundingSpacesNeedQuotes: b.surroundingSpacesNeedQuotes,
		commentMatcher:              b.commentMatcher,
		encoder:                     b.encoder,
		quoteMode:                   b.quoteMode,
		quoteEscapeChar:             b.quoteEscapeChar,
	}, nil
}

// fail records the first error encountered so later calls keep reporting it.
func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return b.err
}
