package syncs

import (
	"path/filepath"
	"sync"
)

// PathLock serializes access to individual files while letting different
// files proceed concurrently. Paths are cleaned, so equivalent spellings of
// the same path share a lock. The zero value is ready to use.
type PathLock struct {
	locks map[string]*pathEntry
	mu    sync.Mutex
}

type pathEntry struct {
	mu   sync.Mutex
	refs int
}

// Lock acquires the lock for path, blocking while another caller holds it.
// The returned function releases it and must be called exactly once.
func (pl *PathLock) Lock(path string) func() {
	key := filepath.Clean(path)

	pl.mu.Lock()
	if pl.locks == nil {
		pl.locks = make(map[string]*pathEntry)
	}

	e, ok := pl.locks[key]
	if !ok {
		e = &pathEntry{}
		pl.locks[key] = e
	}

	e.refs++
	pl.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		pl.mu.Lock()
		defer pl.mu.Unlock()

		e.refs--
		if e.refs == 0 {
			delete(pl.locks, key)
		}
	}
}

// Len returns the number of paths currently locked or waited on.
func (pl *PathLock) Len() int {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	return len(pl.locks)
}
