// Package paths provides utilities for locating the project root and
// resolving target paths inside it.
//
// Target paths come from configuration, so every path is resolved through
// symbolic links and rejected when it ends up outside the project root.
package paths
