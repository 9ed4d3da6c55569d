/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package applist

import "fmt"

// DirectoryAccessError is returned when the target directory cannot be
// opened for listing: it is missing, unreadable or not a directory.
type DirectoryAccessError struct {
	Path string
	Err  error
}

func (e *DirectoryAccessError) Error() string {
	return fmt.Sprintf("failed to read directory %s: %s", e.Path, e.Err)
}

func (e *DirectoryAccessError) Unwrap() error {
	return e.Err
}

// EntryAccessError is returned when the metadata of a single entry cannot
// be retrieved while the directory is being scanned.
type EntryAccessError struct {
	Path string
	Err  error
}

func (e *EntryAccessError) Error() string {
	return fmt.Sprintf("failed to read entry %s: %s", e.Path, e.Err)
}

func (e *EntryAccessError) Unwrap() error {
	return e.Err
}
