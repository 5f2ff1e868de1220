package semver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"

	"github.com/macropower/verbump/pkg/syncerrors"
)

// Version is a major.minor.patch triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a "major.minor.patch" string.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q: expected major.minor.patch", syncerrors.ErrInvalidVersion, s)
	}

	nums := [3]int{}

	for i, p := range parts {
		n, err := parseComponent(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %w", syncerrors.ErrInvalidVersion, s, err)
		}

		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func parseComponent(p string) (int, error) {
	if p == "" {
		return 0, errors.New("empty component")
	}

	for _, c := range p {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("component %q is not a decimal integer", p)
		}
	}

	n, err := strconv.Atoi(p)
	if err != nil {
		return 0, fmt.Errorf("component %q: %w", p, err)
	}

	return n, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BumpPatch returns major.minor.(patch+1).
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// BumpMinor returns major.(minor+1).0.
func (v Version) BumpMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// BumpMajor returns (major+1).0.0.
func (v Version) BumpMajor() Version {
	return Version{Major: v.Major + 1}
}

// BumpKind selects which component [Version.Bump] increments.
type BumpKind string

const (
	BumpPatch BumpKind = "patch"
	BumpMinor BumpKind = "minor"
	BumpMajor BumpKind = "major"
)

// GetBumpKind parses a bump kind, defaulting to [BumpPatch] when empty.
func GetBumpKind(s string) (BumpKind, error) {
	switch BumpKind(strings.ToLower(s)) {
	case BumpPatch, "":
		return BumpPatch, nil
	case BumpMinor:
		return BumpMinor, nil
	case BumpMajor:
		return BumpMajor, nil
	}

	return "", fmt.Errorf("%w: unknown bump kind %q", syncerrors.ErrInvalidVersion, s)
}

// Bump increments the component selected by kind.
func (v Version) Bump(kind BumpKind) Version {
	switch kind {
	case BumpMajor:
		return v.BumpMajor()
	case BumpMinor:
		return v.BumpMinor()
	default:
		return v.BumpPatch()
	}
}

// Resolve returns explicit verbatim when it is non-empty. Otherwise it
// parses current and bumps it by kind.
func Resolve(explicit, current string, kind BumpKind) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	v, err := Parse(current)
	if err != nil {
		return "", err
	}

	return v.Bump(kind).String(), nil
}

// IsStrict reports whether s is a strict SemVer 2.0 version.
func IsStrict(s string) bool {
	_, err := mmsemver.StrictNewVersion(s)

	return err == nil
}
