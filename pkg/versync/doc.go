// Package versync propagates one version string across every file that
// embeds the project version.
//
// A [Synchronizer] reads the current version from the root manifest,
// resolves the new version (explicit, or bumped from the current one) and
// then visits its targets in order. Each target is read once, rewritten in
// memory by its [match.Matcher], checked against its [format.Format], and
// written back atomically only when something changed.
//
// Targets are independent: a missing or failing target is reported and
// the remaining targets are still processed. Only a missing or unusable
// root manifest stops the run, and it does so before any target is touched.
package versync
