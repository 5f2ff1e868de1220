package versync

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/macropower/verbump/pkg/syncerrors"
	"github.com/macropower/verbump/pkg/target"
)

// Outcome is the result class of one target.
type Outcome int

const (
	// OutcomeUpdated means the file was rewritten (or would be, in a dry run).
	OutcomeUpdated Outcome = iota
	// OutcomeUnchanged means the file exists but nothing needed to change.
	OutcomeUnchanged
	// OutcomeMissing means the file does not exist.
	OutcomeMissing
	// OutcomeFailed means the file could not be read, rewritten or written.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeMissing:
		return "missing"
	case OutcomeFailed:
		return "failed"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result describes what happened to one target.
type Result struct {
	Err    error
	Target target.Target
	// Diff is a unified diff of the change. It is only set in dry runs.
	Diff    string
	Outcome Outcome
	// Replacements is the number of rewritten occurrences.
	Replacements int
}

// Report collects the results of a synchronization run.
type Report struct {
	OldVersion string
	NewVersion string
	Results    []Result
	DryRun     bool
}

// Count returns the number of results with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0

	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}

	return n
}

// Err returns an error wrapping [syncerrors.ErrTargetsFailed] and every
// per-target error, or nil when no target failed.
func (r *Report) Err() error {
	var merr error

	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", res.Target.Path, res.Err))
		}
	}

	if merr == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", syncerrors.ErrTargetsFailed, merr)
}
