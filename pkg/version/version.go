package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release version of the binary.
	Version = ""
	// Revision is the VCS revision the binary was built from.
	Revision = ""
	// Branch is the VCS branch the binary was built from, when known.
	Branch = ""
	// BuildDate is the time the binary was built, when known.
	BuildDate = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		setDefaults("", nil)

		return
	}

	setDefaults(info.Main.Version, info.Settings)
}

func setDefaults(mainVersion string, settings []debug.BuildSetting) {
	if Version == "" {
		Version = mainVersion
	}

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if Revision == "" {
				Revision = s.Value
			}
		case "vcs.time":
			if BuildDate == "" {
				BuildDate = s.Value
			}
		}
	}

	if Version == "" || Version == "(devel)" {
		Version = "0.0.0-dev"
	}

	if Revision == "" {
		Revision = "unknown"
	}
}

// String returns a one-line description of the build.
func String() string {
	if Branch == "" {
		return fmt.Sprintf("%s (revision: %s)", Version, Revision)
	}

	return fmt.Sprintf("%s (branch: %s, revision: %s)", Version, Branch, Revision)
}
