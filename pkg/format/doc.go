// Package format validates that file contents still parse in their format.
package format
