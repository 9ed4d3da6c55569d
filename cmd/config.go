/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mirkobrombin/go-struct-flags/v1/binder"
	"github.com/mirkobrombin/lsapps/pkg/applist"
	"github.com/mirkobrombin/lsapps/pkg/tools"
	"github.com/mirkobrombin/lsapps/pkg/types"
	"github.com/spf13/cobra"
)

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the lsapps options",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective options",
		Args:  cobra.NoArgs,
		RunE:  ShowConfig,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set an option in the user options file",
		Long: `Set a single option in the user options file.
Use JSON field names for KEY (target_path, store_path, format, detect_running).`,
		Args: cobra.ExactArgs(2),
		RunE: SetConfig,
	})

	return cmd
}

func ShowConfig(cmd *cobra.Command, args []string) error {
	options, err := applist.GetOptions()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Options:")
	tools.PrintStructKeyVal(cmd.OutOrStdout(), options)
	return nil
}

// SetConfig sets one key of the user options file. Only keys already in
// the file and the one being set are written, defaults are not persisted.
func SetConfig(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	confPath, err := applist.UserOptionsPath()
	if err != nil {
		return err
	}

	var options types.Options
	if _, err := os.Stat(confPath); err == nil {
		options, err = applist.ReadOptions(confPath)
		if err != nil {
			return fmt.Errorf("%s: %w", confPath, err)
		}
	}

	b, err := binder.NewBinder(&options, os.TempDir(), true)
	if err != nil {
		return err
	}

	// string options are set verbatim, the schema check below rejects
	// values out of range
	bindString := func(key string, field *string) {
		b.AddStrings(key, func(v []string) error {
			if len(v) == 0 {
				return fmt.Errorf("missing value for %s", key)
			}
			*field = v[0]
			return nil
		})
	}
	bindString("target_path", &options.TargetPath)
	bindString("store_path", &options.StorePath)
	bindString("format", &options.Format)

	if err := b.Run(key, []string{value}); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	if err := applist.ValidateOptions(data); err != nil {
		return err
	}

	if err := applist.SaveOptions(confPath, options); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Option %s=%s saved in %s\n", key, value, confPath)
	return nil
}
