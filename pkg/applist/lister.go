/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package applist

import (
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mirkobrombin/lsapps/pkg/logger"
	"github.com/mirkobrombin/lsapps/pkg/types"
)

// DefaultTargetPath is the system-level applications directory.
const DefaultTargetPath = "/Applications"

// readBatchSize is the number of entries requested from the OS per read.
const readBatchSize = 64

// IsBundleName reports whether name carries the bundle suffix. The match
// is case-sensitive and requires a non-empty stem, so ".app" alone is not
// a bundle name.
func IsBundleName(name string) bool {
	return len(name) > len(types.BundleSuffix) && strings.HasSuffix(name, types.BundleSuffix)
}

// Applications returns the application bundles found directly inside the
// target directory, in the order the operating system lists them.
//
// The sequence is lazy: the directory is opened when the sequence is
// ranged over and closed when the range ends, whatever the reason. Each
// range re-reads the directory. Errors are fatal and end the sequence: a
// *DirectoryAccessError if the directory cannot be listed, an
// *EntryAccessError if an entry cannot be inspected.
func Applications(target string) iter.Seq2[types.Application, error] {
	return func(yield func(types.Application, error) bool) {
		dir, err := openDir(target)
		if err != nil {
			yield(types.Application{}, err)
			return
		}
		defer dir.Close()

		for {
			entries, readErr := dir.ReadDir(readBatchSize)
			for _, entry := range entries {
				app, ok, err := classify(target, entry.Name())
				if err != nil {
					yield(types.Application{}, err)
					return
				}
				if !ok {
					continue
				}
				if !yield(app, nil) {
					return
				}
			}

			if errors.Is(readErr, io.EOF) {
				return
			}
			if readErr != nil {
				yield(types.Application{}, &EntryAccessError{Path: target, Err: readErr})
				return
			}
		}
	}
}

// Collect drains Applications into a slice. On error the bundles found
// before the failure are discarded.
func Collect(target string) (apps []types.Application, err error) {
	for app, err := range Applications(target) {
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// openDir opens target and makes sure it is a directory.
func openDir(target string) (*os.File, error) {
	dir, err := os.Open(target)
	if err != nil {
		return nil, &DirectoryAccessError{Path: target, Err: err}
	}

	info, err := dir.Stat()
	if err != nil {
		dir.Close()
		return nil, &DirectoryAccessError{Path: target, Err: err}
	}
	if !info.IsDir() {
		dir.Close()
		return nil, &DirectoryAccessError{Path: target, Err: syscall.ENOTDIR}
	}

	return dir, nil
}

// entryPath appends name to target without cleaning it, so "." or ".."
// segments in the target are kept in the printed path.
func entryPath(target, name string) string {
	if strings.HasSuffix(target, string(filepath.Separator)) {
		return target + name
	}
	return target + string(filepath.Separator) + name
}

// classify resolves the entry's full path and decides whether it is a
// bundle. Symlinks are followed, so a link to a bundle directory counts.
func classify(target, name string) (app types.Application, ok bool, err error) {
	path := entryPath(target, name)

	info, err := os.Stat(path)
	if err != nil {
		return app, false, &EntryAccessError{Path: path, Err: err}
	}

	if !info.IsDir() || !IsBundleName(name) {
		logger.Debugf("skipping %s", path)
		return app, false, nil
	}

	return types.Application{Name: name, Path: path}, true, nil
}
