// Package syncs provides synchronization primitives for file access.
package syncs
