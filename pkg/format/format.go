package format

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/macropower/verbump/pkg/syncerrors"
)

// Format is the structured format of a target file.
type Format string

const (
	JSON  Format = "json"
	TOML  Format = "toml"
	YAML  Format = "yaml"
	Plist Format = "plist"
	Text  Format = "text"
)

// Get parses a format name. An empty name is [Text].
func Get(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, TOML, YAML, Plist, Text:
		return f, nil
	case "":
		return Text, nil
	case "yml":
		return YAML, nil
	}

	return "", fmt.Errorf("%w: unknown format %q", syncerrors.ErrInvalidFormat, s)
}

// Validate returns an error wrapping [syncerrors.ErrInvalidFormat] if data
// does not parse as f. [Text] always validates.
func Validate(f Format, data []byte) error {
	var err error

	switch f {
	case JSON:
		if !json.Valid(data) {
			err = errors.New("not valid JSON")
		}
	case TOML:
		v := map[string]any{}
		err = toml.Unmarshal(data, &v)
	case YAML:
		err = validateYAML(data)
	case Plist:
		err = validateXML(data)
	case Text:
	default:
		err = fmt.Errorf("unknown format %q", f)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %w", syncerrors.ErrInvalidFormat, f, err)
	}

	return nil
}

func validateYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	for {
		var n yaml.Node

		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err //nolint:wrapcheck // Wrapped by Validate.
		}
	}
}

func validateXML(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err //nolint:wrapcheck // Wrapped by Validate.
		}
	}
}
