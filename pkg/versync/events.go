package versync

type (
	// Sent once the old and new versions are known, before any target is
	// processed.
	EventStarted struct {
		OldVersion string
		NewVersion string
		Total      int
		DryRun     bool
	}

	// Sent after each target has been processed.
	EventTargetDone struct {
		Result Result
	}

	// Sent when all work has completed.
	EventDone struct {
		Err error
	}
)
