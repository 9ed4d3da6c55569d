/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mirkobrombin/lsapps/pkg/applist"
	"github.com/mirkobrombin/lsapps/pkg/tools"
	"github.com/mirkobrombin/lsapps/pkg/types"
	"github.com/spf13/cobra"
)

func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the application bundles of the target directory",
		Args:  cobra.NoArgs,
		RunE:  ListApplications,
	}

	addListFlags(cmd)

	return cmd
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", "", "Directory to scan (default: /Applications)")
	cmd.Flags().StringP("format", "f", "", "Output format: plain, table or json")
	cmd.Flags().BoolP("json", "j", false, "Print output in JSON format")
	cmd.Flags().BoolP("running", "r", false, "Mark the bundles that have a running process")
}

func listError(iErr error) (err error) {
	err = fmt.Errorf("an error occurred while listing applications: %w", iErr)
	return
}

// resolveOptions loads the options file and applies the flags the user
// explicitly set on cmd.
func resolveOptions(cmd *cobra.Command) (options types.Options, err error) {
	options, err = applist.GetOptions()
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		options.TargetPath, _ = flags.GetString("dir")
	}
	if flags.Changed("format") {
		options.Format, _ = flags.GetString("format")
	}
	if flags.Changed("json") {
		if jsonFlag, _ := flags.GetBool("json"); jsonFlag {
			options.Format = types.FormatJSON
		}
	}
	if flags.Changed("running") {
		options.DetectRunning, _ = flags.GetBool("running")
	}

	switch options.Format {
	case types.FormatPlain, types.FormatTable, types.FormatJSON:
	default:
		err = fmt.Errorf("unknown output format %q", options.Format)
	}
	return
}

func ListApplications(cmd *cobra.Command, args []string) error {
	options, err := resolveOptions(cmd)
	if err != nil {
		return listError(err)
	}

	out := cmd.OutOrStdout()
	if options.Format != types.FormatJSON {
		fmt.Fprintf(out, "Target directory: %s\n", options.TargetPath)
	}

	if options.Format == types.FormatPlain && !options.DetectRunning {
		return streamApplications(out, options.TargetPath)
	}

	apps, err := applist.Collect(options.TargetPath)
	if err != nil {
		return listError(err)
	}

	if options.DetectRunning {
		if err := applist.DetectRunning(apps); err != nil {
			return listError(err)
		}
	}

	switch options.Format {
	case types.FormatJSON:
		if apps == nil {
			apps = []types.Application{}
		}
		jsonBytes, err := json.MarshalIndent(apps, "", "  ")
		if err != nil {
			return listError(err)
		}
		fmt.Fprintln(out, string(jsonBytes))
	case types.FormatTable:
		header := []string{"Name", "Path"}
		if options.DetectRunning {
			header = append(header, "Running")
		}
		data := [][]string{}
		for _, app := range apps {
			row := []string{app.DisplayName(), app.Path}
			if options.DetectRunning {
				row = append(row, runningLabel(app))
			}
			data = append(data, row)
		}
		tools.ShowTable(out, header, data)
	default:
		for _, app := range apps {
			fmt.Fprintf(out, "  %s%s\n", app.Path, runningSuffix(app))
		}
	}

	return nil
}

// streamApplications prints each bundle as soon as it is found, so lines
// already written stay on the output if the scan aborts.
func streamApplications(out io.Writer, target string) error {
	for app, err := range applist.Applications(target) {
		if err != nil {
			return listError(err)
		}
		fmt.Fprintf(out, "  %s\n", app.Path)
	}
	return nil
}

func runningLabel(app types.Application) string {
	if !app.Running {
		return "no"
	}
	return fmt.Sprintf("yes %v", app.Pids)
}

func runningSuffix(app types.Application) string {
	if !app.Running {
		return ""
	}
	return fmt.Sprintf(" (running, pid %v)", app.Pids)
}
