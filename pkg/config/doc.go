// Package config loads the optional target configuration file.
//
// The file lets a project override the root manifest path and replace the
// built-in target list:
//
//	rootManifest: package.json
//	targets:
//	  - path: package.json
//	    format: json
//	    match:
//	      kind: anchored
//	      before: '"version"\s*:\s*"'
//	      after: '"'
//	  - path: src-tauri/latest.json
//	    format: json
//	    match:
//	      kind: literal
package config
