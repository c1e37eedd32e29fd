package csvpref

import (
	"fmt"
	"regexp"
	"strings"
)

// CommentMatcher decides whether a raw input line is a comment to be
// discarded before tokenization. Implementations must be pure and safe for
// concurrent use.
type CommentMatcher interface {
	IsComment(line string) bool
}

// PrefixCommentMatcher treats lines starting with a fixed prefix as comments.
type PrefixCommentMatcher struct {
	prefix string
}

// NewPrefixCommentMatcher creates a matcher for lines starting with prefix.
// An empty prefix is rejected, since it would match every line.
func NewPrefixCommentMatcher(prefix string) (*PrefixCommentMatcher, error) {
	if prefix == "" {
		return nil, fmt.Errorf("%w: comment prefix is empty", ErrInvalidArgument)
	}
	return &PrefixCommentMatcher{prefix: prefix}, nil
}

// IsComment implements CommentMatcher.
func (m *PrefixCommentMatcher) IsComment(line string) bool {
	return strings.HasPrefix(line, m.prefix)
}

// RegexCommentMatcher treats lines fully matching a regular expression as
// comments.
type RegexCommentMatcher struct {
	re *regexp.Regexp
}

// NewRegexCommentMatcher compiles pattern and creates a matcher for lines
// matching it in full. An empty or invalid pattern is rejected.
func NewRegexCommentMatcher(pattern string) (*RegexCommentMatcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: comment pattern is empty", ErrInvalidArgument)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid comment pattern: %v", ErrInvalidArgument, err)
	}
	return &RegexCommentMatcher{re: re}, nil
}

// IsComment implements CommentMatcher.
func (m *RegexCommentMatcher) IsComment(line string) bool {
	return m.re.MatchString(line)
}
