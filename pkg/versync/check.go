package versync

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/verbump/pkg/paths"
	"github.com/macropower/verbump/pkg/syncerrors"
	"github.com/macropower/verbump/pkg/target"
)

// Status is the check result class of one target.
type Status int

const (
	// StatusInSync means the expected version was found in context.
	StatusInSync Status = iota
	// StatusDrift means the file exists but the expected version was not
	// found in context, or another version was found next to it.
	StatusDrift
	// StatusMissing means the file does not exist.
	StatusMissing
	// StatusFailed means the file could not be read or matched.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInSync:
		return "in sync"
	case StatusDrift:
		return "drift"
	case StatusMissing:
		return "missing"
	case StatusFailed:
		return "failed"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// CheckResult describes one checked target.
type CheckResult struct {
	Err    error
	Target target.Target
	Status Status
	// Stale lists in-context values that differ from the version.
	Stale []string
	// Found is the number of in-context occurrences of the version.
	Found int
}

// CheckReport collects the results of a check run.
type CheckReport struct {
	Version string
	Results []CheckResult
}

// Count returns the number of results with the given status.
func (r *CheckReport) Count(st Status) int {
	n := 0

	for _, res := range r.Results {
		if res.Status == st {
			n++
		}
	}

	return n
}

// Err returns an error wrapping [syncerrors.ErrTargetsFailed] if any target
// failed, or [syncerrors.ErrDrift] if any target drifted, or nil.
func (r *CheckReport) Err() error {
	var failed, drifted error

	for _, res := range r.Results {
		switch res.Status {
		case StatusFailed:
			failed = multierror.Append(failed, fmt.Errorf("%s: %w", res.Target.Path, res.Err))
		case StatusDrift:
			if len(res.Stale) > 0 {
				drifted = multierror.Append(drifted, fmt.Errorf("%s: stale %q", res.Target.Path, res.Stale))
			} else {
				drifted = multierror.Append(drifted, fmt.Errorf("%s: %q not found", res.Target.Path, r.Version))
			}
		}
	}

	if failed != nil {
		return fmt.Errorf("%w: %w", syncerrors.ErrTargetsFailed, failed)
	}

	if drifted != nil {
		return fmt.Errorf("%w: %w", syncerrors.ErrDrift, drifted)
	}

	return nil
}

// Check reports whether every target carries version in context. When
// version is empty, the root manifest's version is used. Nothing is written.
func (s *Synchronizer) Check(version string) (*CheckReport, error) {
	logger := slog.With(
		slog.String("cmd", "check"),
		slog.String("root", s.Root),
	)

	m, err := s.ReadRootManifest()
	if err != nil {
		return nil, err
	}

	if version == "" {
		version = m.Version
	}

	ts, err := s.GetTargets(m)
	if err != nil {
		return nil, err
	}

	report := &CheckReport{
		Version: version,
		Results: make([]CheckResult, 0, len(ts)),
	}

	for _, t := range ts {
		res := checkTarget(s.Root, t, version)

		logger.Debug("checked target",
			slog.String("target", t.Path),
			slog.String("status", res.Status.String()),
			slog.Int("found", res.Found),
			slog.Any("stale", res.Stale),
		)

		report.Results = append(report.Results, res)
	}

	return report, report.Err()
}

func checkTarget(root string, t target.Target, version string) CheckResult {
	res := CheckResult{Target: t}

	path, err := paths.ResolveTargetPath(root, t.Path)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err

		return res
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		res.Status = StatusMissing

		return res
	} else if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%w: %w", syncerrors.ErrReadFile, err)

		return res
	}

	n, err := t.Matcher.Count(string(data), version)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err

		return res
	}

	values, err := t.Matcher.Values(string(data))
	if err != nil {
		res.Status = StatusFailed
		res.Err = err

		return res
	}

	for _, v := range values {
		if v != version {
			res.Stale = append(res.Stale, v)
		}
	}

	res.Found = n

	if n == 0 || len(res.Stale) > 0 {
		res.Status = StatusDrift
	} else {
		res.Status = StatusInSync
	}

	return res
}
