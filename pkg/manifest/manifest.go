package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/buger/jsonparser"
	"github.com/pelletier/go-toml/v2"

	"github.com/macropower/verbump/pkg/format"
	"github.com/macropower/verbump/pkg/syncerrors"
)

// Manifest is the subset of the root manifest used for synchronization.
type Manifest struct {
	Name    string
	Version string
}

// ReadRoot reads the name and version of the JSON root manifest at path.
// Any failure wraps [syncerrors.ErrRootManifest].
func ReadRoot(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Manifest{}, fmt.Errorf("%w: %w %q", syncerrors.ErrRootManifest, syncerrors.ErrFileNotFound, path)
	} else if err != nil {
		return Manifest{}, fmt.Errorf("%w: %w %q: %w", syncerrors.ErrRootManifest, syncerrors.ErrReadFile, path, err)
	}

	return ParseRoot(data)
}

// ParseRoot parses the name and version of a JSON root manifest. The
// version field is required; the name field is optional. The whole document
// must be valid JSON.
func ParseRoot(data []byte) (Manifest, error) {
	if err := format.Validate(format.JSON, data); err != nil {
		return Manifest{}, fmt.Errorf("%w: %w", syncerrors.ErrRootManifest, err)
	}

	version, err := jsonparser.GetString(data, "version")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return Manifest{}, fmt.Errorf("%w: missing \"version\" field", syncerrors.ErrRootManifest)
	} else if err != nil {
		return Manifest{}, fmt.Errorf("%w: %w: version: %w", syncerrors.ErrRootManifest, syncerrors.ErrInvalidFormat, err)
	}

	if version == "" {
		return Manifest{}, fmt.Errorf("%w: empty \"version\" field", syncerrors.ErrRootManifest)
	}

	name, err := jsonparser.GetString(data, "name")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return Manifest{}, fmt.Errorf("%w: %w: name: %w", syncerrors.ErrRootManifest, syncerrors.ErrInvalidFormat, err)
	}

	return Manifest{Name: name, Version: version}, nil
}

type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

// ReadCrateName returns the [package].name of the Cargo manifest at path.
func ReadCrateName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q", syncerrors.ErrFileNotFound, path)
	} else if err != nil {
		return "", fmt.Errorf("%w %q: %w", syncerrors.ErrReadFile, path, err)
	}

	m := cargoManifest{}
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("%w: %q: %w", syncerrors.ErrInvalidFormat, path, err)
	}

	if m.Package.Name == "" {
		return "", fmt.Errorf("%w: %q: missing [package].name", syncerrors.ErrInvalidFormat, path)
	}

	return m.Package.Name, nil
}
