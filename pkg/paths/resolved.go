// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Licensed under the Apache License, Version 2.0

package paths

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/macropower/verbump/pkg/syncerrors"
)

// ErrMaxNestingLevelReached is returned when a chain of symbolic links is
// deeper than allowed.
var ErrMaxNestingLevelReached = errors.New("maximum nesting level reached")

// MaxSymlinkDepth is the number of symbolic links followed by
// [ResolveTargetPath].
const MaxSymlinkDepth = 10

// ResolveSymbolicLinkRecursive resolves the symlink path recursively to its
// canonical path on the file system, with a maximum nesting level of maxDepth.
// If path is not a symlink, returns the verbatim copy of path and err of nil.
func ResolveSymbolicLinkRecursive(path string, maxDepth int) (string, error) {
	resolved, err := os.Readlink(path)
	if err != nil {
		// path is not a symbolic link
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return path, nil
		}
		// Other error has occurred
		return "", fmt.Errorf("failed to read link for path '%s': %w", path, err)
	}

	if maxDepth == 0 {
		return "", ErrMaxNestingLevelReached
	}

	// If we resolved to a relative symlink, make sure we use the absolute
	// path for further resolving
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(path), resolved)
	}

	return ResolveSymbolicLinkRecursive(resolved, maxDepth-1)
}

// ResolveTargetPath joins the project-relative path rel onto root, follows
// symbolic links, and makes sure the final path is still inside root. The
// returned path is absolute. The file itself does not need to exist.
func ResolveTargetPath(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q is absolute", syncerrors.ErrResolvedOutsideRepo, rel)
	}

	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("get absolute path: %w", err)
	}

	// Compare against the real root so a symlinked checkout still works.
	realRoot, err := filepath.EvalSymlinks(rootAbs)
	if err != nil {
		realRoot = rootAbs
	}

	joined := filepath.Join(rootAbs, filepath.FromSlash(rel))
	if !isWithin(rootAbs, joined) {
		return "", fmt.Errorf("%w: %q", syncerrors.ErrResolvedOutsideRepo, rel)
	}

	if err := checkRealPath(rootAbs, realRoot, joined); err != nil {
		return "", fmt.Errorf("%q: %w", rel, err)
	}

	resolved, err := ResolveSymbolicLinkRecursive(joined, MaxSymlinkDepth)
	if err != nil {
		return "", fmt.Errorf("%q: %w", rel, err)
	}

	if resolved == joined {
		return joined, nil
	}

	if !isWithin(rootAbs, resolved) && !isWithin(realRoot, resolved) {
		return "", fmt.Errorf("%w: %q links to %q", syncerrors.ErrResolvedOutsideRepo, rel, resolved)
	}

	return resolved, nil
}

// checkRealPath resolves the deepest existing ancestor of path, up to root,
// through every symbolic link and makes sure it is inside realRoot. This
// catches linked parent directories, not only a linked file.
func checkRealPath(root, realRoot, path string) error {
	for current := path; isWithin(root, current); current = filepath.Dir(current) {
		real, err := filepath.EvalSymlinks(current)
		if err == nil {
			if !isWithin(realRoot, real) {
				return fmt.Errorf("%w: resolves to %q", syncerrors.ErrResolvedOutsideRepo, real)
			}

			return nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("resolve %q: %w", current, err)
		}
	}

	return nil
}
