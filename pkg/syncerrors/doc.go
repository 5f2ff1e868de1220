// Package syncerrors provides error definitions for version synchronization.
//
// This package defines standardized sentinel errors so that callers can
// classify failures with [errors.Is] regardless of how deeply they were
// wrapped.
package syncerrors
