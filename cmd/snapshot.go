/*
* Copyright (c) 2025 FABRICATORS S.R.L.
* Licensed under the Fabricators Public Access License (FPAL) v1.0
* See https://github.com/fabricatorsltd/FPAL for details.
 */
package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mirkobrombin/lsapps/pkg/applist"
	"github.com/mirkobrombin/lsapps/pkg/logger"
	"github.com/mirkobrombin/lsapps/pkg/tools"
	"github.com/spf13/cobra"
)

func NewSnapshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Record the application bundles of the target directory",
		Args:  cobra.NoArgs,
		RunE:  RecordSnapshot,
	}

	cmd.Flags().StringP("dir", "d", "", "Directory to scan (default: /Applications)")

	return cmd
}

func snapshotError(iErr error) (err error) {
	err = fmt.Errorf("an error occurred while recording the snapshot: %w", iErr)
	return
}

func RecordSnapshot(cmd *cobra.Command, args []string) error {
	options, err := resolveOptions(cmd)
	if err != nil {
		return snapshotError(err)
	}

	apps, err := applist.Collect(options.TargetPath)
	if err != nil {
		return snapshotError(err)
	}

	store, err := applist.NewStore(options.StorePath)
	if err != nil {
		return snapshotError(fmt.Errorf("failed to open store: %w", err))
	}
	defer store.Close()

	var progress func()
	if len(apps) > 0 {
		bar := tools.NewProgressBar(cmd.ErrOrStderr(), len(apps), "Saving snapshot")
		progress = func() { _ = bar.Add(1) }
	}

	snap, err := store.SaveSnapshot(options.TargetPath, apps, progress)
	if err != nil {
		return snapshotError(err)
	}

	logger.Debugf("snapshot stored in %s", options.StorePath)
	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %s recorded: %d application(s) in %s\n", snap.Id, len(snap.Applications), snap.TargetPath)
	return nil
}

func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the recorded snapshots",
		Args:  cobra.NoArgs,
		RunE:  ListSnapshots,
	}

	cmd.Flags().BoolP("json", "j", false, "Print output in JSON format")

	return cmd
}

func ListSnapshots(cmd *cobra.Command, args []string) error {
	jsonFlag, _ := cmd.Flags().GetBool("json")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.Snapshots()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonFlag {
		jsonBytes, err := json.MarshalIndent(snaps, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	header := []string{"Id", "Created", "Target", "Applications"}
	data := [][]string{}
	for _, snap := range snaps {
		data = append(data, []string{snap.Id, snap.CreatedAt.Format(time.RFC3339), snap.TargetPath, fmt.Sprint(len(snap.Applications))})
	}
	tools.ShowTable(out, header, data)
	return nil
}

func NewDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff SNAPSHOT_ID",
		Short: "Compare a snapshot with the current content of its directory",
		Args:  cobra.ExactArgs(1),
		RunE:  DiffSnapshot,
	}

	cmd.Flags().BoolP("json", "j", false, "Print output in JSON format")

	return cmd
}

func DiffSnapshot(cmd *cobra.Command, args []string) error {
	jsonFlag, _ := cmd.Flags().GetBool("json")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Snapshot(args[0])
	if err != nil {
		return err
	}

	apps, err := applist.Collect(snap.TargetPath)
	if err != nil {
		return err
	}

	diff := applist.Diff(snap.Applications, apps)
	out := cmd.OutOrStdout()

	if jsonFlag {
		jsonBytes, err := json.MarshalIndent(diff, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	if diff.Empty() {
		fmt.Fprintf(out, "No changes in %s since snapshot %s\n", snap.TargetPath, snap.Id)
		return nil
	}
	for _, name := range diff.Added {
		fmt.Fprintf(out, "+ %s\n", name)
	}
	for _, name := range diff.Removed {
		fmt.Fprintf(out, "- %s\n", name)
	}
	return nil
}

func NewForgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forget SNAPSHOT_ID",
		Short: "Delete a recorded snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  ForgetSnapshot,
	}

	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func ForgetSnapshot(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !tools.ConfirmOperation(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete snapshot %s?", args[0])) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteSnapshot(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %s deleted\n", args[0])
	return nil
}

func openStore() (*applist.Store, error) {
	options, err := applist.GetOptions()
	if err != nil {
		return nil, err
	}

	store, err := applist.NewStore(options.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}
