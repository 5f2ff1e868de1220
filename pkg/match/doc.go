// Package match locates and rewrites version strings embedded in text.
//
// A [Matcher] is one of a closed set of variants:
//
//   - [Anchored] rewrites the version only where it appears between a
//     recognized prefix and suffix, such as a "version" key in JSON or a
//     CFBundleVersion entry in a property list. Version-looking strings
//     elsewhere in the file are left untouched.
//   - [LiteralMatcher] rewrites every occurrence of the exact version text.
//     It is meant for files whose only purpose is to carry the version.
//
// All rewrites preserve the surrounding text byte for byte.
package match
