// # CsvPref: Validated CSV Format Preferences for Go
//
// CsvPref is a small Go library describing how a delimited-text format should be read and written: which character quotes fields, which symbols separate fields and terminate records, and which pluggable strategies govern escaping, quoting decisions, and comment detection. A preference is validated once, at construction, so a reader/writer pipeline consuming it never has to re-check the format description.
//
// # Features
//
// - Immutable `Preference` values, safe for unrestricted concurrent reuse across reader/writer sessions.
// - A chained `Builder` that validates all cross-field invariants in a single `Build` call and reports failures via `ErrInvalidArgument` and `ErrMissingValue` sentinels.
// - Four ready-made dialect presets: `StandardPreference`, `ExcelPreference`, `ExcelNorthEuropePreference`, and `TabPreference`.
// - Pluggable strategy contracts (`Encoder`, `QuoteMode`, `CommentMatcher`) with standard implementations, including prefix and regex comment matchers.
// - Multi-byte delimiters and end-of-line sequences, configurable quote-escape characters, and clone-and-override construction from any existing preference.
//
// # Getting Started
//
// The module path is `github.com/mast2252/csvpref`. Build a preference from raw values with `NewBuilder`, or start from a preset with `NewBuilderFrom` and override only what differs.
package csvpref
