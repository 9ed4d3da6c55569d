/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package types

// Output formats accepted by Options.Format.
const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Options is the struct that represents the options for lsapps.
type Options struct {
	// TargetPath is the directory scanned for application bundles.
	TargetPath string `json:"target_path,omitempty" jsonschema:"description=Directory scanned for application bundles"`

	// StorePath is the path to the directory where the snapshots
	// database will be stored.
	StorePath string `json:"store_path,omitempty" jsonschema:"description=Directory holding the snapshots database"`

	// Format is the output format of the listing: plain, table or json.
	Format string `json:"format,omitempty" jsonschema:"enum=plain,enum=table,enum=json"`

	// DetectRunning marks the bundles that have a running process.
	DetectRunning bool `json:"detect_running,omitempty" flag:"detect_running,bool"`
}
