// Package syncprint renders synchronization progress to a terminal.
//
// A [Printer] subscribes to [versync.Synchronizer] events and prints one
// status line per target, prefixed with a symbol for its outcome.
package syncprint
