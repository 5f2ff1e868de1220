package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/macropower/verbump/pkg/syncerrors"
)

// Literal returns a [LiteralMatcher].
func Literal() Matcher {
	return LiteralMatcher{}
}

// JSONKey matches the string value of a JSON key, e.g. `"version": "1.2.3"`.
func JSONKey(key string) Matcher {
	return Anchored{
		Before: `"` + regexp.QuoteMeta(key) + `"\s*:\s*"`,
		After:  `"`,
	}
}

// JSONNamedVersion matches a "version" value that immediately follows a
// "name" entry with the given value. An empty name matches any name.
func JSONNamedVersion(name string) Matcher {
	return Anchored{
		Before: `"name"\s*:\s*"` + namePattern(name, `[^"]*`) + `"\s*,\s*"version"\s*:\s*"`,
		After:  `"`,
	}
}

// TOMLNamedVersion matches a `version = "..."` line that immediately follows
// a `name = "..."` line with the given value, as found in a Cargo manifest's
// [package] table and in Cargo lockfile entries. An empty name matches any
// name.
func TOMLNamedVersion(name string) Matcher {
	return Anchored{
		Before: `^[ \t]*name[ \t]*=[ \t]*"` + namePattern(name, `[^"\n]*`) +
			`"[ \t]*\r?\n[ \t]*version[ \t]*=[ \t]*"`,
		After: `"`,
	}
}

// PlistKeys matches the <string> value following any of the given <key>
// elements in a property list.
func PlistKeys(keys ...string) Matcher {
	return Anchored{
		Before: `<key>` + alternation(keys) + `</key>\s*<string>`,
		After:  `</string>`,
	}
}

// YAMLKeys matches the scalar value of any of the given mapping keys. The
// value may be bare or quoted, and may be followed by a comment.
func YAMLKeys(keys ...string) Matcher {
	return Anchored{
		Before: `^[ \t]*` + alternation(keys) + `:[ \t]*["']?`,
		After:  `["']?[ \t]*(?:#.*)?\r?$`,
	}
}

func namePattern(name, anyName string) string {
	if name == "" {
		return anyName
	}

	return regexp.QuoteMeta(name)
}

func alternation(keys []string) string {
	quoted := make([]string, 0, len(keys))
	for _, k := range keys {
		quoted = append(quoted, regexp.QuoteMeta(k))
	}

	return "(?:" + strings.Join(quoted, "|") + ")"
}

// Spec is the serializable description of a [Matcher].
type Spec struct {
	Kind   Kind   `yaml:"kind"`
	Before string `yaml:"before,omitempty"`
	After  string `yaml:"after,omitempty"`
}

// FromSpec builds and validates the [Matcher] described by s.
func FromSpec(s Spec) (Matcher, error) {
	var m Matcher

	switch s.Kind {
	case KindLiteral:
		if s.Before != "" || s.After != "" {
			return nil, fmt.Errorf("%w: literal matcher does not take before/after", syncerrors.ErrInvalidMatcher)
		}

		m = LiteralMatcher{}
	case KindAnchored, "":
		m = Anchored{Before: s.Before, After: s.After}
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", syncerrors.ErrInvalidMatcher, s.Kind)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}
