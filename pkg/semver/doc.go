// Package semver parses and increments "major.minor.patch" version strings.
//
// Parsing is intentionally narrow: a version is exactly three dot-separated
// non-negative decimal integers. Pre-release and build metadata are not
// understood, and the patch component is a plain integer, so "1.2.9" bumps
// to "1.2.10".
package semver
