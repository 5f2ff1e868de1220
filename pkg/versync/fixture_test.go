package versync_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// project is a complete Angular + Tauri checkout at version 2.3.1. Every
// file also carries "2.3.1" somewhere that must not be rewritten.
var project = map[string]string{
	"package.json": `{
  "name": "app",
  "version": "2.3.1",
  "scripts": {
    "release": "verbump"
  },
  "devDependencies": {
    "typescript": "2.3.1"
  }
}
`,
	"package-lock.json": `{
  "name": "app",
  "version": "2.3.1",
  "lockfileVersion": 3,
  "packages": {
    "": {
      "name": "app",
      "version": "2.3.1"
    },
    "node_modules/typescript": {
      "version": "2.3.1"
    }
  }
}
`,
	"projects/app/package.json": `{
  "name": "app",
  "version": "2.3.1",
  "peerDependencies": {
    "rxjs": "2.3.1"
  }
}
`,
	"src-tauri/Cargo.toml": `[package]
name = "app"
version = "2.3.1"
edition = "2021"

[dependencies]
tauri = { version = "2.3.1" }
`,
	"src-tauri/Cargo.lock": `version = 4

[[package]]
name = "app"
version = "2.3.1"

[[package]]
name = "tauri"
version = "2.3.1"
`,
	"src-tauri/tauri.conf.json": `{
  "productName": "Angular Momentum",
  "version": "2.3.1",
  "identifier": "com.example.app",
  "plugins": {
    "updater": {
      "endpoints": ["https://example.com/latest.json"]
    }
  }
}
`,
	"src-tauri/latest.json": `{
  "version": "2.3.1",
  "notes": "Release 2.3.1",
  "platforms": {
    "darwin-aarch64": {
      "url": "https://example.com/v2.3.1/App_2.3.1_aarch64.app.tar.gz"
    },
    "windows-x86_64": {
      "url": "https://example.com/v2.3.1/App_2.3.1_x64-setup.nsis.zip",
      "minimum": "12.3.1"
    }
  }
}
`,
	"src-tauri/gen/apple/app_iOS/Info.plist": `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleShortVersionString</key>
	<string>2.3.1</string>
	<key>CFBundleVersion</key>
	<string>2.3.1</string>
	<key>LSMinimumSystemVersion</key>
	<string>2.3.1</string>
</dict>
</plist>
`,
	"src-tauri/gen/apple/project.yml": `name: app
options:
  deploymentTarget:
    iOS: 2.3.1
targets:
  app_iOS:
    info:
      properties:
        CFBundleShortVersionString: 2.3.1
        CFBundleVersion: "2.3.1"
`,
}

// synced is project after synchronizing to 2.3.2, for files whose full
// expected content is asserted.
var synced = map[string]string{
	"package-lock.json": `{
  "name": "app",
  "version": "2.3.2",
  "lockfileVersion": 3,
  "packages": {
    "": {
      "name": "app",
      "version": "2.3.2"
    },
    "node_modules/typescript": {
      "version": "2.3.1"
    }
  }
}
`,
	"src-tauri/Cargo.toml": `[package]
name = "app"
version = "2.3.2"
edition = "2021"

[dependencies]
tauri = { version = "2.3.1" }
`,
	"src-tauri/Cargo.lock": `version = 4

[[package]]
name = "app"
version = "2.3.2"

[[package]]
name = "tauri"
version = "2.3.1"
`,
	"src-tauri/latest.json": `{
  "version": "2.3.2",
  "notes": "Release 2.3.2",
  "platforms": {
    "darwin-aarch64": {
      "url": "https://example.com/v2.3.2/App_2.3.2_aarch64.app.tar.gz"
    },
    "windows-x86_64": {
      "url": "https://example.com/v2.3.2/App_2.3.2_x64-setup.nsis.zip",
      "minimum": "12.3.1"
    }
  }
}
`,
	"src-tauri/gen/apple/project.yml": `name: app
options:
  deploymentTarget:
    iOS: 2.3.1
targets:
  app_iOS:
    info:
      properties:
        CFBundleShortVersionString: 2.3.2
        CFBundleVersion: "2.3.2"
`,
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return root
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)

	return string(data)
}

func readProject(t *testing.T, root string) map[string]string {
	t.Helper()

	files := map[string]string{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(rel)] = string(data)

		return nil
	})
	require.NoError(t, err)

	return files
}

func without(files map[string]string, rel string) map[string]string {
	out := make(map[string]string, len(files))

	for k, v := range files {
		if k != rel {
			out[k] = v
		}
	}

	return out
}
