package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/verbump/pkg/paths"
	"github.com/macropower/verbump/pkg/syncerrors"
)

func TestResolveTargetPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	root := filepath.Join(base, "project")
	outside := filepath.Join(base, "outside.json")

	writeFile(t, filepath.Join(root, "package.json"), "{}")
	writeFile(t, outside, "{}")
	require.NoError(t, os.Symlink(filepath.Join(root, "package.json"), filepath.Join(root, "inside-link.json")))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "outside-link.json")))

	writeFile(t, filepath.Join(base, "elsewhere", "Cargo.toml"), "")
	writeFile(t, filepath.Join(root, "gen-real", "project.yml"), "")
	require.NoError(t, os.Symlink(filepath.Join(base, "elsewhere"), filepath.Join(root, "src-tauri")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gen-real"), filepath.Join(root, "gen")))

	tcs := map[string]struct {
		err  error
		rel  string
		want string
	}{
		"plain file": {
			rel:  "package.json",
			want: filepath.Join(root, "package.json"),
		},
		"missing file": {
			rel:  "projects/app/package.json",
			want: filepath.Join(root, "projects", "app", "package.json"),
		},
		"linked parent inside root": {
			rel:  "gen/project.yml",
			want: filepath.Join(root, "gen", "project.yml"),
		},
		"linked parent outside root": {
			rel: "src-tauri/Cargo.toml",
			err: syncerrors.ErrResolvedOutsideRepo,
		},
		"missing file under linked parent outside root": {
			rel: "src-tauri/Cargo.lock",
			err: syncerrors.ErrResolvedOutsideRepo,
		},
		"link inside root": {
			rel:  "inside-link.json",
			want: filepath.Join(root, "package.json"),
		},
		"link outside root": {
			rel: "outside-link.json",
			err: syncerrors.ErrResolvedOutsideRepo,
		},
		"dot dot": {
			rel: "../outside.json",
			err: syncerrors.ErrResolvedOutsideRepo,
		},
		"absolute": {
			rel: outside,
			err: syncerrors.ErrResolvedOutsideRepo,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := paths.ResolveTargetPath(root, tc.rel)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveSymbolicLinkRecursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	foo := filepath.Join(dir, "foo")
	writeFile(t, foo, "")
	require.NoError(t, os.Symlink("foo", filepath.Join(dir, "bar")))
	require.NoError(t, os.Symlink("bar", filepath.Join(dir, "baz")))

	got, err := paths.ResolveSymbolicLinkRecursive(filepath.Join(dir, "baz"), 2)
	require.NoError(t, err)
	assert.Equal(t, foo, got)

	_, err = paths.ResolveSymbolicLinkRecursive(filepath.Join(dir, "baz"), 1)
	require.ErrorIs(t, err, paths.ErrMaxNestingLevelReached)

	got, err = paths.ResolveSymbolicLinkRecursive(filepath.Join(dir, "nope"), 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nope"), got)
}
