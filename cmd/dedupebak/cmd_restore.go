package main

import (
	"github.com/spf13/cobra"

	"github.com/hapax/vaultbak/internal/repo"
	"github.com/hapax/vaultbak/internal/store"
)

func newRestoreCommand(gopts *GlobalOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "restore DATA_FOLDER REPOSITORY_FOLDER [archive_name] [snapshot_name]",
		Short:   "Reproduce a snapshot's tree in the data folder, pruning what it doesn't contain",
		Args:    cobra.RangeArgs(2, 4),
		GroupID: cmdGroupDefault,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataFolder, repoFolder, archiveName, snapshotName := parseDataSnapshotArgs(args)

			r, err := repo.Open(repoFolder, false, archiveName)
			if err != nil {
				return err
			}

			err = r.Restore(archiveName, snapshotName, dataFolder, store.RestoreOptions{
				Abort:   gopts.Abort,
				DryRun:  dryRun,
				Printer: gopts.Printer(),
			})
			if err != nil {
				return err
			}

			gopts.Printer().Result("restore: done")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "leave the data folder untouched; with --verbose, list the files restore would copy (files and folders it would prune are not listed)")

	return cmd
}
