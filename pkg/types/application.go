/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package types

import "strings"

// Application is the struct that represents an application bundle found
// in the target directory.
type Application struct {
	// Name is the name of the bundle directory, suffix included
	// (e.g. "Safari.app").
	Name string `json:"name"`

	// Path is the full path of the bundle, the target directory joined
	// with Name.
	Path string `json:"path"`

	// Running reports whether at least one process is executing a binary
	// from inside the bundle. It is only set when running detection has
	// been requested.
	Running bool `json:"running,omitempty"`

	// Pids is the list of processes executing from inside the bundle.
	Pids []int32 `json:"pids,omitempty"`
}

// DisplayName returns the bundle name without its suffix.
func (a Application) DisplayName() string {
	return strings.TrimSuffix(a.Name, BundleSuffix)
}

// BundleSuffix is the directory-name suffix that identifies an
// application bundle.
const BundleSuffix = ".app"
