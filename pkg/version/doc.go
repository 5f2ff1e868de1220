// Package version provides version information for the application.
//
// [Version] and [Revision] are set at link time with -ldflags. When they are
// not, they fall back to the module build information embedded by the Go
// toolchain.
package version
