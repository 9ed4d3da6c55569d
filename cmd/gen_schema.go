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

	"github.com/mirkobrombin/lsapps/pkg/applist"
	"github.com/mirkobrombin/lsapps/pkg/logger"
	"github.com/spf13/cobra"
)

// NewGenSchemaCommand creates the `gen-schema` command for generating the
// JSON Schema of the options file.
func NewGenSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "gen-schema",
		Short:  "Generate JSON Schema for the options file (hidden)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE:   runGenSchema,
	}

	cmd.Flags().StringP("output", "o", "options.schema.json", "Schema output path")

	return cmd
}

// runGenSchema generates the JSON Schema of types.Options and writes it to
// the output path.
func runGenSchema(cmd *cobra.Command, args []string) error {
	schemaPath, _ := cmd.Flags().GetString("output")

	out, err := json.MarshalIndent(applist.OptionsSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(schemaPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write schema to %s: %w", schemaPath, err)
	}

	logger.Println("Schema generated at", schemaPath)
	return nil
}
