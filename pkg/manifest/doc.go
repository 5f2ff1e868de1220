// Package manifest reads project metadata from the root manifest and the
// native shell's Cargo manifest.
package manifest
