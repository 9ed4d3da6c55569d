/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package cmd

import (
	"github.com/mirkobrombin/lsapps/pkg/logger"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the lsapps command tree. Run without a
// subcommand it behaves like "lsapps list".
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lsapps",
		Short: "List the application bundles installed in a directory",
		Long: `lsapps lists the application bundles (directories whose name ends
with ".app") found directly inside a target directory, /Applications by default.`,
		Args:          cobra.NoArgs,
		RunE:          ListApplications,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger.SetVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug messages on stderr")
	addListFlags(rootCmd)

	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewSnapshotCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewDiffCommand())
	rootCmd.AddCommand(NewForgetCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewGenSchemaCommand())

	rootCmd.Version = version
	return rootCmd
}
