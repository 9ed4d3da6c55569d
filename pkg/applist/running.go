/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package applist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mirkobrombin/lsapps/pkg/logger"
	"github.com/mirkobrombin/lsapps/pkg/types"
	"github.com/shirou/gopsutil/process"
)

// Process is a running process and the path of its executable.
type Process struct {
	Pid int32
	Exe string
}

// RunningProcesses returns every process whose executable path can be
// read. Processes owned by other users are usually hidden and skipped.
func RunningProcesses() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	var running []Process
	for _, p := range procs {
		exe, err := p.Exe()
		if err != nil || exe == "" {
			continue
		}
		running = append(running, Process{Pid: p.Pid, Exe: exe})
	}

	logger.Debugf("found %d inspectable processes", len(running))
	return running, nil
}

// MarkRunning sets Running and Pids on every bundle that contains the
// executable of one of procs.
func MarkRunning(apps []types.Application, procs []Process) {
	for i := range apps {
		prefix := filepath.Clean(apps[i].Path) + string(filepath.Separator)
		for _, p := range procs {
			if strings.HasPrefix(p.Exe, prefix) {
				apps[i].Running = true
				apps[i].Pids = append(apps[i].Pids, p.Pid)
			}
		}
	}
}

// DetectRunning is RunningProcesses followed by MarkRunning.
func DetectRunning(apps []types.Application) error {
	procs, err := RunningProcesses()
	if err != nil {
		return err
	}
	MarkRunning(apps, procs)
	return nil
}
