// Package target describes the files that carry the project version.
package target

import (
	"fmt"

	"github.com/macropower/verbump/pkg/format"
	"github.com/macropower/verbump/pkg/match"
)

// Target is one file and the rule that locates the version inside it.
type Target struct {
	Matcher match.Matcher
	// Path is relative to the project root.
	Path   string
	Format format.Format
}

func (t Target) String() string {
	return t.Path
}

// Targets is an ordered list of [Target]s.
type Targets []Target

// Validate checks every target has a path and a usable matcher.
func (ts Targets) Validate() error {
	seen := map[string]bool{}

	for i, t := range ts {
		if t.Path == "" {
			return fmt.Errorf("target %d: empty path", i)
		}

		if seen[t.Path] {
			return fmt.Errorf("target %d: duplicate path %q", i, t.Path)
		}

		seen[t.Path] = true

		if t.Matcher == nil {
			return fmt.Errorf("target %q: no matcher", t.Path)
		}

		if err := t.Matcher.Validate(); err != nil {
			return fmt.Errorf("target %q: %w", t.Path, err)
		}
	}

	return nil
}

// Paths returns the path of every target, in order.
func (ts Targets) Paths() []string {
	paths := make([]string, 0, len(ts))
	for _, t := range ts {
		paths = append(paths, t.Path)
	}

	return paths
}
