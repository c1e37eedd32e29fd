package csvpref

import "testing"

func TestNormalQuoteModeQuotesRequired(t *testing.T) {
	t.Parallel()

	spaces, err := NewBuilder('"', ",", "\r\n").SurroundingSpacesNeedQuotes(true).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	multiDelim, err := NewBuilder('"', "||", "\n").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tests := []struct {
		name          string
		pref          *Preference
		value         string
		quotesAlready bool
		want          bool
	}{
		{
			name:  "plain",
			pref:  StandardPreference,
			value: "alpha",
			want:  false,
		},
		{
			name:  "empty",
			pref:  StandardPreference,
			value: "",
			want:  false,
		},
		{
			name:  "containsDelimiter",
			pref:  StandardPreference,
			value: "a,b",
			want:  true,
		},
		{
			name:  "containsQuote",
			pref:  StandardPreference,
			value: `a"b`,
			want:  true,
		},
		{
			name:  "containsLF",
			pref:  StandardPreference,
			value: "a\nb",
			want:  true,
		},
		{
			name:  "containsCR",
			pref:  StandardPreference,
			value: "a\rb",
			want:  true,
		},
		{
			name:          "alreadyQuoted",
			pref:          StandardPreference,
			value:         "alpha",
			quotesAlready: true,
			want:          true,
		},
		{
			name:  "leadingSpaceWithoutFlag",
			pref:  StandardPreference,
			value: " alpha",
			want:  false,
		},
		{
			name:  "leadingSpaceWithFlag",
			pref:  spaces,
			value: " alpha",
			want:  true,
		},
		{
			name:  "trailingSpaceWithFlag",
			pref:  spaces,
			value: "alpha ",
			want:  true,
		},
		{
			name:  "interiorSpaceWithFlag",
			pref:  spaces,
			value: "al pha",
			want:  false,
		},
		{
			name:  "multiCharDelimiterFullSequence",
			pref:  multiDelim,
			value: "a||b",
			want:  true,
		},
		{
			name:  "multiCharDelimiterPartialSequence",
			pref:  multiDelim,
			value: "a|b",
			want:  false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := (NormalQuoteMode{}).QuotesRequired(tc.value, tc.pref, tc.quotesAlready)
			if got != tc.want {
				t.Fatalf("QuotesRequired(%q, _, %v) = %v, want %v", tc.value, tc.quotesAlready, got, tc.want)
			}
		})
	}
}

func TestAlwaysQuoteMode(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "alpha", "a,b", " "} {
		if !(AlwaysQuoteMode{}).QuotesRequired(value, StandardPreference, false) {
			t.Fatalf("QuotesRequired(%q) = false, want true", value)
		}
	}
}
