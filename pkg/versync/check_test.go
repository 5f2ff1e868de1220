package versync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/verbump/pkg/semver"
	"github.com/macropower/verbump/pkg/syncerrors"
	"github.com/macropower/verbump/pkg/target"
	"github.com/macropower/verbump/pkg/versync"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	root := writeProject(t, without(project, target.ShellUpdate))
	s := versync.New(root)

	report, err := s.Check("")
	require.NoError(t, err)
	assert.Equal(t, "2.3.1", report.Version)
	assert.Equal(t, len(project)-1, report.Count(versync.StatusInSync))
	assert.Equal(t, 1, report.Count(versync.StatusMissing))

	report, err = s.Check("9.9.9")
	require.ErrorIs(t, err, syncerrors.ErrDrift)
	assert.Equal(t, len(project)-1, report.Count(versync.StatusDrift))

	_, err = s.Sync("", semver.BumpPatch)
	require.NoError(t, err)

	report, err = s.Check("")
	require.NoError(t, err)
	assert.Equal(t, "2.3.2", report.Version)
	assert.Equal(t, len(project)-1, report.Count(versync.StatusInSync))
}

func TestCheckDetectsPartialSync(t *testing.T) {
	t.Parallel()

	root := writeProject(t, merge(project, map[string]string{
		target.ShellConfig: `{"version": "2.3.0"}`,
	}))

	report, err := versync.New(root).Check("")
	require.ErrorIs(t, err, syncerrors.ErrDrift)

	for _, res := range report.Results {
		if res.Target.Path == target.ShellConfig {
			assert.Equal(t, versync.StatusDrift, res.Status)
			assert.Zero(t, res.Found)
		} else {
			assert.Equal(t, versync.StatusInSync, res.Status, res.Target.Path)
			assert.Positive(t, res.Found)
		}
	}
}

func TestCheckDetectsPartiallyUpdatedFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path    string
		content string
		stale   []string
	}{
		"lockfile root package entry": {
			path: target.RootLockfile,
			content: `{
  "name": "app",
  "version": "2.3.1",
  "lockfileVersion": 3,
  "packages": {
    "": {
      "name": "app",
      "version": "2.3.0"
    }
  }
}
`,
			stale: []string{"2.3.0"},
		},
		"plist bundle version": {
			path: target.ShellInfoPlist,
			content: `<plist version="1.0">
<dict>
	<key>CFBundleShortVersionString</key>
	<string>2.3.1</string>
	<key>CFBundleVersion</key>
	<string>2.2.9</string>
</dict>
</plist>
`,
			stale: []string{"2.2.9"},
		},
		"xcodegen bundle version": {
			path:    target.ShellXcodeGen,
			content: "CFBundleShortVersionString: 2.3.0\nCFBundleVersion: \"2.3.1\"\n",
			stale:   []string{"2.3.0"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := writeProject(t, merge(project, map[string]string{tc.path: tc.content}))

			report, err := versync.New(root).Check("")
			require.ErrorIs(t, err, syncerrors.ErrDrift)
			assert.Equal(t, len(project)-1, report.Count(versync.StatusInSync))

			for _, res := range report.Results {
				if res.Target.Path != tc.path {
					assert.Empty(t, res.Stale, res.Target.Path)

					continue
				}

				assert.Equal(t, versync.StatusDrift, res.Status)
				assert.Equal(t, 1, res.Found)
				assert.Equal(t, tc.stale, res.Stale)
			}
		})
	}
}

func TestCheckRootManifestFatal(t *testing.T) {
	t.Parallel()

	root := writeProject(t, without(project, target.RootManifest))

	report, err := versync.New(root).Check("")
	require.ErrorIs(t, err, syncerrors.ErrRootManifest)
	assert.Nil(t, report)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "updated", versync.OutcomeUpdated.String())
	assert.Equal(t, "unchanged", versync.OutcomeUnchanged.String())
	assert.Equal(t, "missing", versync.OutcomeMissing.String())
	assert.Equal(t, "failed", versync.OutcomeFailed.String())
	assert.Equal(t, "in sync", versync.StatusInSync.String())
	assert.Equal(t, "drift", versync.StatusDrift.String())
}
