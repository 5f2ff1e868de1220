package versync_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/verbump/pkg/syncerrors"
	"github.com/macropower/verbump/pkg/versync"
)

func TestFileWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tcs := map[string]struct {
		err      error
		path     string
		existing string
	}{
		"new file": {
			path: filepath.Join(dir, "new.json"),
		},
		"existing file": {
			path:     filepath.Join(dir, "existing.json"),
			existing: `{"version": "1.0.0"}`,
		},
		"missing directory": {
			path: filepath.Join(dir, "missing", "file.json"),
			err:  syncerrors.ErrWriteFile,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if tc.existing != "" {
				require.NoError(t, os.WriteFile(tc.path, []byte(tc.existing), 0o600))
			}

			err := versync.File.WriteFile(tc.path, []byte(`{"version": "1.0.1"}`))
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)

			data, err := os.ReadFile(tc.path)
			require.NoError(t, err)
			assert.JSONEq(t, `{"version": "1.0.1"}`, string(data))
		})
	}
}
