package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/verbump/cmd/verbump/commands"
)

const (
	cmdName = "verbump"

	shortDesc = "Synchronize the project version across every manifest."
	longDesc  = `verbump propagates one version string to every manifest, lockfile and
packaging descriptor of an Angular + Tauri project.

With no argument, the version in the root package.json is bumped (patch by
default, see --bump). With an argument, that version is used verbatim.

Each target file is matched in context, so unrelated occurrences of the old
version (dependency versions, deployment targets) are left untouched. Missing
files are skipped with a warning.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
