package versync

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"

	"github.com/macropower/verbump/pkg/format"
	"github.com/macropower/verbump/pkg/manifest"
	"github.com/macropower/verbump/pkg/paths"
	"github.com/macropower/verbump/pkg/semver"
	"github.com/macropower/verbump/pkg/syncerrors"
	"github.com/macropower/verbump/pkg/target"
)

// Synchronizer updates the version embedded in a project's files.
type Synchronizer struct {
	// Root is the project root. Target paths are relative to it.
	Root string
	// RootManifest is the project-relative path of the JSON manifest that
	// holds the current version.
	RootManifest string
	// Targets overrides the built-in target list when non-nil.
	Targets target.Targets
	subs    []func(any)
	// DryRun computes every change without writing.
	DryRun bool
}

// New creates a [Synchronizer] for the project at root.
func New(root string, opts ...SynchronizerOpts) *Synchronizer {
	s := &Synchronizer{
		Root:         root,
		RootManifest: target.RootManifest,
		subs:         []func(any){},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type SynchronizerOpts func(*Synchronizer)

func WithRootManifest(path string) SynchronizerOpts {
	return func(s *Synchronizer) {
		s.RootManifest = path
	}
}

func WithTargets(ts target.Targets) SynchronizerOpts {
	return func(s *Synchronizer) {
		s.Targets = ts
	}
}

func WithDryRun(dryRun bool) SynchronizerOpts {
	return func(s *Synchronizer) {
		s.DryRun = dryRun
	}
}

// Subscribe registers f to receive events.
func (s *Synchronizer) Subscribe(f func(any)) {
	s.subs = append(s.subs, f)
}

func (s *Synchronizer) broadcastEvent(evt any) {
	for _, sub := range s.subs {
		sub(evt)
	}
}

// ReadRootManifest reads the root manifest. The error wraps
// [syncerrors.ErrRootManifest] on any failure.
func (s *Synchronizer) ReadRootManifest() (manifest.Manifest, error) {
	path, err := paths.ResolveTargetPath(s.Root, s.RootManifest)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("%w: %w", syncerrors.ErrRootManifest, err)
	}

	m, err := manifest.ReadRoot(path)
	if err != nil {
		return manifest.Manifest{}, fmt.Errorf("read root manifest: %w", err)
	}

	return m, nil
}

// GetTargets returns the configured targets, or the built-in list anchored
// on the names found in m and in the native shell's Cargo manifest.
func (s *Synchronizer) GetTargets(m manifest.Manifest) (target.Targets, error) {
	if s.Targets != nil {
		return s.Targets, nil
	}

	p := target.Project{Name: m.Name}

	crate, err := s.readCrateName()
	switch {
	case err == nil:
		p.CrateName = crate
	case errors.Is(err, syncerrors.ErrFileNotFound):
		slog.Debug("no cargo manifest, using npm name for crate", slog.String("name", m.Name))
	default:
		slog.Warn("could not read crate name, using npm name",
			slog.String("path", target.ShellManifest),
			slog.Any("err", err),
		)
	}

	ts := target.Default(p)
	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidConfig, err)
	}

	return ts, nil
}

func (s *Synchronizer) readCrateName() (string, error) {
	path, err := paths.ResolveTargetPath(s.Root, target.ShellManifest)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", target.ShellManifest, err)
	}

	return manifest.ReadCrateName(path) //nolint:wrapcheck // Already wrapped.
}

// Sync sets every target to a new version. When explicit is non-empty it is
// used verbatim; otherwise the root manifest's version is bumped by kind.
//
// The returned error is non-nil when the root manifest cannot be used, in
// which case no target was read or written and the report is nil, or when
// one or more targets failed, in which case the report is complete and the
// error wraps [syncerrors.ErrTargetsFailed].
func (s *Synchronizer) Sync(explicit string, kind semver.BumpKind) (*Report, error) {
	logger := slog.With(
		slog.String("cmd", "sync"),
		slog.String("root", s.Root),
	)

	m, err := s.ReadRootManifest()
	if err != nil {
		return nil, err
	}

	newVersion, err := semver.Resolve(explicit, m.Version, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: current version: %w", syncerrors.ErrRootManifest, err)
	}

	if explicit != "" && !semver.IsStrict(explicit) {
		logger.Warn("explicit version is not strict semver, using it anyway", slog.String("version", explicit))
	}

	ts, err := s.GetTargets(m)
	if err != nil {
		return nil, err
	}

	report := &Report{
		OldVersion: m.Version,
		NewVersion: newVersion,
		DryRun:     s.DryRun,
		Results:    make([]Result, 0, len(ts)),
	}

	logger.Debug("synchronizing",
		slog.String("old", m.Version),
		slog.String("new", newVersion),
		slog.Int("targets", len(ts)),
	)

	s.broadcastEvent(EventStarted{
		OldVersion: m.Version,
		NewVersion: newVersion,
		Total:      len(ts),
		DryRun:     s.DryRun,
	})

	for _, t := range ts {
		res := s.syncTarget(logger, t, m.Version, newVersion)
		report.Results = append(report.Results, res)

		s.broadcastEvent(EventTargetDone{Result: res})
	}

	err = report.Err()
	s.broadcastEvent(EventDone{Err: err})

	return report, err
}

func (s *Synchronizer) syncTarget(logger *slog.Logger, t target.Target, oldVersion, newVersion string) Result {
	logger = logger.With(slog.String("target", t.Path))
	res := Result{Target: t}

	fail := func(err error) Result {
		logger.Info("target failed", slog.Any("err", err))

		res.Outcome = OutcomeFailed
		res.Err = err

		return res
	}

	path, err := paths.ResolveTargetPath(s.Root, t.Path)
	if err != nil {
		return fail(err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("target file not found, skipping")

		res.Outcome = OutcomeMissing
		res.Err = fmt.Errorf("%w %q", syncerrors.ErrFileNotFound, t.Path)

		return res
	} else if err != nil {
		return fail(fmt.Errorf("%w: %w", syncerrors.ErrReadFile, err))
	}

	original := string(data)

	updated, n, err := t.Matcher.Replace(original, oldVersion, newVersion)
	if err != nil {
		return fail(err)
	}

	if updated == original {
		logger.Debug("no changes needed", slog.Int("matches", n))

		res.Outcome = OutcomeUnchanged

		return res
	}

	res.Replacements = n

	// Only refuse the rewrite if it breaks a file that parsed before.
	if err := format.Validate(t.Format, data); err != nil {
		logger.Debug("original does not parse, skipping validation", slog.Any("err", err))
	} else if err := format.Validate(t.Format, []byte(updated)); err != nil {
		return fail(fmt.Errorf("rewrite would break file: %w", err))
	}

	if s.DryRun {
		res.Diff = udiff.Unified(filepath.ToSlash(t.Path), filepath.ToSlash(t.Path), original, updated)
	} else if err := File.WriteFile(path, []byte(updated)); err != nil {
		return fail(err)
	}

	logger.Debug("updated", slog.Int("replacements", n), slog.Bool("dry_run", s.DryRun))

	res.Outcome = OutcomeUpdated

	return res
}
