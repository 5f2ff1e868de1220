package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/macropower/verbump/pkg/syncerrors"
)

// Kind names a [Matcher] variant.
type Kind string

const (
	KindAnchored Kind = "anchored"
	KindLiteral  Kind = "literal"
)

// Matcher finds a version string in text and replaces it.
type Matcher interface {
	// Kind returns the variant name.
	Kind() Kind
	// Replace returns content with every matched occurrence of oldVersion
	// rewritten to newVersion, and the number of rewrites.
	Replace(content, oldVersion, newVersion string) (string, int, error)
	// Count returns the number of matched occurrences of version.
	Count(content, version string) (int, error)
	// Values returns every version-like value found in context, whatever
	// its version. Matchers without a context return nil.
	Values(content string) ([]string, error)
	// Validate reports whether the matcher can be used.
	Validate() error
}

const (
	groupBefore = "before"
	groupValue  = "value"
	groupAfter  = "after"

	// valuePattern matches any version-like value: it starts with a digit
	// and stops at whitespace, quotes or markup.
	valuePattern = `[0-9][^\s"'<>]*?`
)

// Anchored matches a version only between Before and After, which are
// regular expression fragments (RE2 syntax, compiled in multi-line mode).
type Anchored struct {
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

func (a Anchored) Kind() Kind {
	return KindAnchored
}

func (a Anchored) compile(version string) (*regexp.Regexp, error) {
	return a.compileValue(regexp.QuoteMeta(version))
}

func (a Anchored) compileValue(value string) (*regexp.Regexp, error) {
	pattern := fmt.Sprintf(`(?m)(?P<%s>%s)(?P<%s>%s)(?P<%s>%s)`,
		groupBefore, a.Before,
		groupValue, value,
		groupAfter, a.After,
	)

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidMatcher, err)
	}

	return re, nil
}

func (a Anchored) Validate() error {
	if a.Before == "" && a.After == "" {
		return fmt.Errorf("%w: anchored matcher needs a before or after context", syncerrors.ErrInvalidMatcher)
	}

	_, err := a.compile("0.0.0")

	return err
}

func (a Anchored) Replace(content, oldVersion, newVersion string) (string, int, error) {
	if oldVersion == "" {
		return content, 0, nil
	}

	re, err := a.compile(oldVersion)
	if err != nil {
		return content, 0, err
	}

	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0, nil
	}

	bi := re.SubexpIndex(groupBefore)
	ai := re.SubexpIndex(groupAfter)

	var sb strings.Builder

	sb.Grow(len(content) + len(matches)*(len(newVersion)-len(oldVersion)))

	last := 0
	for _, m := range matches {
		sb.WriteString(content[last:m[2*bi+1]])
		sb.WriteString(newVersion)

		last = m[2*ai]
	}

	sb.WriteString(content[last:])

	return sb.String(), len(matches), nil
}

func (a Anchored) Count(content, version string) (int, error) {
	if version == "" {
		return 0, nil
	}

	re, err := a.compile(version)
	if err != nil {
		return 0, err
	}

	return len(re.FindAllStringIndex(content, -1)), nil
}

func (a Anchored) Values(content string) ([]string, error) {
	re, err := a.compileValue(valuePattern)
	if err != nil {
		return nil, err
	}

	vi := re.SubexpIndex(groupValue)

	var values []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		values = append(values, m[vi])
	}

	return values, nil
}

// LiteralMatcher matches every standalone occurrence of the version text.
// An occurrence that is part of a longer version-looking token, such as
// "1.2.3" inside "11.2.3" or "1.2.30", is not a match.
type LiteralMatcher struct{}

func (LiteralMatcher) Kind() Kind {
	return KindLiteral
}

func (LiteralMatcher) Validate() error {
	return nil
}

func (LiteralMatcher) Replace(content, oldVersion, newVersion string) (string, int, error) {
	idx := literalIndexes(content, oldVersion)
	if len(idx) == 0 {
		return content, 0, nil
	}

	var sb strings.Builder

	sb.Grow(len(content) + len(idx)*(len(newVersion)-len(oldVersion)))

	last := 0
	for _, i := range idx {
		sb.WriteString(content[last:i])
		sb.WriteString(newVersion)

		last = i + len(oldVersion)
	}

	sb.WriteString(content[last:])

	return sb.String(), len(idx), nil
}

func (LiteralMatcher) Count(content, version string) (int, error) {
	return len(literalIndexes(content, version)), nil
}

func (LiteralMatcher) Values(string) ([]string, error) {
	return nil, nil
}

func literalIndexes(content, version string) []int {
	if version == "" {
		return nil
	}

	var idx []int

	for off := 0; off < len(content); {
		i := strings.Index(content[off:], version)
		if i < 0 {
			break
		}

		start := off + i
		end := start + len(version)

		if !extendsBefore(content, start) && !extendsAfter(content, end) {
			idx = append(idx, start)
		}

		off = end
	}

	return idx
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func extendsBefore(s string, start int) bool {
	if start == 0 {
		return false
	}

	if isDigit(s[start-1]) {
		return true
	}

	return s[start-1] == '.' && start >= 2 && isDigit(s[start-2])
}

func extendsAfter(s string, end int) bool {
	if end >= len(s) {
		return false
	}

	if isDigit(s[end]) {
		return true
	}

	return s[end] == '.' && end+1 < len(s) && isDigit(s[end+1])
}
