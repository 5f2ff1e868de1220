package syncerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrRead indicates an error occurred while reading.
	ErrRead = errors.New("read")

	// ErrReadFile indicates an error occurred while reading a file.
	ErrReadFile = fmt.Errorf("file: %w", ErrRead)

	// ErrWrite indicates an error occurred while writing.
	ErrWrite = errors.New("write")

	// ErrWriteFile indicates an error occurred while writing a file.
	ErrWriteFile = fmt.Errorf("file: %w", ErrWrite)

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrResolvedOutsideRepo indicates a path resolved outside of the
	// repository root.
	ErrResolvedOutsideRepo = errors.New("resolved outside repository")

	// ErrRootManifest indicates the root manifest is missing or does not
	// carry a usable version field.
	ErrRootManifest = errors.New("root manifest")

	// ErrInvalidFormat indicates an unexpected or invalid format was encountered.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidVersion indicates a version string could not be parsed.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidMatcher indicates a match rule could not be compiled.
	ErrInvalidMatcher = errors.New("invalid matcher")

	// ErrInvalidConfig indicates the configuration file is invalid.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrTargetsFailed indicates one or more targets could not be synchronized.
	ErrTargetsFailed = errors.New("targets failed")

	// ErrDrift indicates one or more targets do not carry the expected version.
	ErrDrift = errors.New("version drift")
)
