package main

import (
	"github.com/spf13/cobra"

	"github.com/hapax/vaultbak/internal/repo"
)

func newBackupCommand(gopts *GlobalOptions) *cobra.Command {
	var archiveName string

	cmd := &cobra.Command{
		Use:     "backup DATA_FOLDER REPOSITORY_FOLDER [archive_name]",
		Short:   "Scan a data folder and store a new snapshot",
		Args:    cobra.RangeArgs(2, 3),
		GroupID: cmdGroupDefault,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataFolder, repoFolder := args[0], args[1]
			if len(args) == 3 {
				archiveName = args[2]
			}

			r, err := repo.Open(repoFolder, true, archiveName)
			if err != nil {
				return err
			}

			name, snap, err := r.Backup(dataFolder, repo.BackupOptions{
				ArchiveName: archiveName,
				Filters:     gopts.Filters(),
				Abort:       gopts.Abort,
				Printer:     gopts.Printer(),
			})
			if err != nil {
				return err
			}

			gopts.Printer().Result("snapshot %s: %d folders, %d files", name, len(snap.Folders), len(snap.Files))
			return nil
		},
	}

	return cmd
}
