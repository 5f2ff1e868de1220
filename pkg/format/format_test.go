package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/verbump/pkg/format"
	"github.com/macropower/verbump/pkg/syncerrors"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		format format.Format
		input  string
		valid  bool
	}{
		"json":          {format: format.JSON, input: `{"version": "1.0.0"}`, valid: true},
		"json broken":   {format: format.JSON, input: `{"version": "1.0.0"`},
		"toml":          {format: format.TOML, input: "[package]\nname = \"app\"\nversion = \"1.0.0\"\n", valid: true},
		"toml lockfile": {format: format.TOML, input: "version = 3\n\n[[package]]\nname = \"app\"\nversion = \"1.0.0\"\n", valid: true},
		"toml broken":   {format: format.TOML, input: "[package\nname = \"app\"\n"},
		"yaml":          {format: format.YAML, input: "name: app\nversion: 1.0.0\n", valid: true},
		"yaml multidoc": {format: format.YAML, input: "a: 1\n---\nb: 2\n", valid: true},
		"yaml broken":   {format: format.YAML, input: "a: [1, 2\n"},
		"plist": {
			format: format.Plist,
			input: `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0"><dict><key>CFBundleVersion</key><string>1.0.0</string></dict></plist>`,
			valid: true,
		},
		"plist broken": {format: format.Plist, input: "<plist><dict></plist>"},
		"text":         {format: format.Text, input: "{{{", valid: true},
		"unknown":      {format: format.Format("ini"), input: ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := format.Validate(tc.format, []byte(tc.input))
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, syncerrors.ErrInvalidFormat)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]format.Format{
		"":      format.Text,
		"JSON":  format.JSON,
		"toml":  format.TOML,
		"yml":   format.YAML,
		"yaml":  format.YAML,
		"plist": format.Plist,
	} {
		got, err := format.Get(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := format.Get("ini")
	require.ErrorIs(t, err, syncerrors.ErrInvalidFormat)
}
