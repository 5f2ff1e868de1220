package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/macropower/verbump/pkg/format"
	"github.com/macropower/verbump/pkg/match"
	"github.com/macropower/verbump/pkg/syncerrors"
	"github.com/macropower/verbump/pkg/target"
)

// DefaultFileName is looked up in the project root when no configuration
// file is given explicitly.
const DefaultFileName = ".verbump.yaml"

// Config is the decoded configuration file.
type Config struct {
	RootManifest string       `yaml:"rootManifest,omitempty"`
	Targets      []TargetSpec `yaml:"targets,omitempty"`
}

// TargetSpec is the serializable form of a [target.Target].
type TargetSpec struct {
	Path   string     `yaml:"path"`
	Format string     `yaml:"format,omitempty"`
	Match  match.Spec `yaml:"match"`
}

// Load reads the configuration file at path. When path is empty, the
// [DefaultFileName] in root is used if it exists, and an empty [Config] is
// returned otherwise.
func Load(root, path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(root, DefaultFileName)

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w %q", syncerrors.ErrInvalidConfig, syncerrors.ErrFileNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %w %q: %w", syncerrors.ErrInvalidConfig, syncerrors.ErrReadFile, path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return c, nil
}

// Parse decodes configuration data. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidConfig, err)
	}

	return c, nil
}

// GetTargets builds the configured targets. It returns nil when the file
// does not define any, meaning the built-in list applies.
func (c *Config) GetTargets() (target.Targets, error) {
	if len(c.Targets) == 0 {
		return nil, nil
	}

	var merr error

	ts := make(target.Targets, 0, len(c.Targets))

	for i, spec := range c.Targets {
		f, err := format.Get(spec.Format)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("targets[%d]: %w", i, err))

			continue
		}

		m, err := match.FromSpec(spec.Match)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("targets[%d]: %w", i, err))

			continue
		}

		ts = append(ts, target.Target{Path: spec.Path, Format: f, Matcher: m})
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidConfig, merr)
	}

	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", syncerrors.ErrInvalidConfig, err)
	}

	return ts, nil
}

// GetRootManifest returns the configured root manifest path, or
// [target.RootManifest].
func (c *Config) GetRootManifest() string {
	if c.RootManifest == "" {
		return target.RootManifest
	}

	return c.RootManifest
}
