/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package cmd

import (
	"fmt"

	"github.com/mirkobrombin/lsapps/pkg/applist"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the `validate` command for verifying an
// options file against the JSON Schema.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [options file]",
		Short: "Validate an lsapps.json options file against options.schema.json",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	return cmd
}

// runValidate checks the provided options file against the JSON Schema and
// reports any validation errors.
func runValidate(cmd *cobra.Command, args []string) error {
	optionsPath := args[0]

	if _, err := applist.ReadOptions(optionsPath); err != nil {
		return fmt.Errorf("%s: %w", optionsPath, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Options file is valid against the schema.")
	return nil
}
