package target

import (
	"github.com/macropower/verbump/pkg/format"
	"github.com/macropower/verbump/pkg/match"
)

const (
	RootManifest   = "package.json"
	RootLockfile   = "package-lock.json"
	SubManifest    = "projects/app/package.json"
	ShellManifest  = "src-tauri/Cargo.toml"
	ShellLockfile  = "src-tauri/Cargo.lock"
	ShellConfig    = "src-tauri/tauri.conf.json"
	ShellUpdate    = "src-tauri/latest.json"
	ShellInfoPlist = "src-tauri/gen/apple/app_iOS/Info.plist"
	ShellXcodeGen  = "src-tauri/gen/apple/project.yml"
)

var bundleVersionKeys = []string{"CFBundleShortVersionString", "CFBundleVersion"}

// Project holds the names used to anchor version matches.
type Project struct {
	// Name is the npm package name from the root manifest.
	Name string
	// CrateName is the native shell's crate name. Defaults to Name.
	CrateName string
}

// Default returns the built-in target list for an Angular project packaged
// with a Tauri desktop shell.
func Default(p Project) Targets {
	crate := p.CrateName
	if crate == "" {
		crate = p.Name
	}

	return Targets{
		{Path: RootManifest, Format: format.JSON, Matcher: match.JSONKey("version")},
		{Path: RootLockfile, Format: format.JSON, Matcher: match.JSONNamedVersion(p.Name)},
		{Path: SubManifest, Format: format.JSON, Matcher: match.JSONNamedVersion("")},
		{Path: ShellManifest, Format: format.TOML, Matcher: match.TOMLNamedVersion(crate)},
		{Path: ShellLockfile, Format: format.TOML, Matcher: match.TOMLNamedVersion(crate)},
		{Path: ShellConfig, Format: format.JSON, Matcher: match.JSONKey("version")},
		{Path: ShellUpdate, Format: format.JSON, Matcher: match.Literal()},
		{Path: ShellInfoPlist, Format: format.Plist, Matcher: match.PlistKeys(bundleVersionKeys...)},
		{Path: ShellXcodeGen, Format: format.YAML, Matcher: match.YAMLKeys(bundleVersionKeys...)},
	}
}
