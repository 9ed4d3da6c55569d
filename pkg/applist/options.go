/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package applist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mirkobrombin/lsapps/pkg/logger"
	"github.com/mirkobrombin/lsapps/pkg/types"
)

// GetOptions reads lsapps options following a defined priority order:
//  1. If the LSAPPS_OPTS_FILE environment variable is set, the file it
//     names is the sole source.
//  2. Otherwise the options file is searched, in order, in
//     "~/.config/lsapps/lsapps.json", "/etc/lsapps/lsapps.json" and
//     "/usr/share/lsapps/lsapps.json". The first existing file wins.
//  3. A file found is validated against the options schema, then decoded.
//  4. Fields left empty are filled with defaults: the target directory is
//     "/Applications", the store lives in the LSAPPS_INSTALLATION_PATH
//     environment variable or "~/.local/share/lsapps", under "store".
//
// No directory is created here, listing must stay read-only.
func GetOptions() (options types.Options, err error) {
	for _, confPath := range optionsPaths() {
		info, statErr := os.Stat(confPath)
		if statErr != nil {
			if !os.IsNotExist(statErr) {
				logger.Warnf("skipping options file %s: %s", confPath, statErr)
			}
			continue
		}
		if info.IsDir() {
			logger.Warnf("skipping options file %s: is a directory", confPath)
			continue
		}

		logger.Debugf("loading options from %s", confPath)
		options, err = ReadOptions(confPath)
		if err != nil {
			return options, fmt.Errorf("%s: %w", confPath, err)
		}
		break
	}

	fillDefaults(&options)
	return options, nil
}

// UserOptionsPath returns the per-user options file, the one written by
// "lsapps config set".
func UserOptionsPath() (string, error) {
	if p := os.Getenv("LSAPPS_OPTS_FILE"); p != "" {
		return p, nil
	}

	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homedir, ".config", "lsapps", "lsapps.json"), nil
}

func optionsPaths() []string {
	if p := os.Getenv("LSAPPS_OPTS_FILE"); p != "" {
		return []string{p}
	}

	var confPaths []string
	if homedir, err := os.UserHomeDir(); err == nil {
		confPaths = append(confPaths, filepath.Join(homedir, ".config", "lsapps", "lsapps.json"))
	}
	confPaths = append(confPaths, filepath.Join("/", "etc", "lsapps", "lsapps.json"))
	confPaths = append(confPaths, filepath.Join("/", "usr", "share", "lsapps", "lsapps.json"))
	return confPaths
}

func fillDefaults(options *types.Options) {
	if options.TargetPath == "" {
		options.TargetPath = DefaultTargetPath
	}
	if options.Format == "" {
		options.Format = types.FormatPlain
	}
	if options.StorePath == "" {
		installationPath := os.Getenv("LSAPPS_INSTALLATION_PATH")
		if installationPath == "" {
			homedir, err := os.UserHomeDir()
			if err != nil {
				homedir = os.TempDir()
			}
			installationPath = filepath.Join(homedir, ".local", "share", "lsapps")
		}
		options.StorePath = filepath.Join(installationPath, "store")
	}
}

// ReadOptions reads, validates and parses the options file at the given
// path. The file must be a valid JSON file.
func ReadOptions(path string) (options types.Options, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if err = ValidateOptions(data); err != nil {
		return
	}

	err = json.Unmarshal(data, &options)
	return
}

// SaveOptions writes options as indented JSON, creating the parent
// directory if needed.
func SaveOptions(path string, options types.Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(options, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
