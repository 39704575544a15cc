package main

import (
	"github.com/spf13/cobra"

	"github.com/hapax/vaultbak/internal/repo"
)

func newCompareCommand(gopts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare DATA_FOLDER REPOSITORY_FOLDER [archive_name] [snapshot_name]",
		Short:   "Report drift between a snapshot and the live data folder",
		Args:    cobra.RangeArgs(2, 4),
		GroupID: cmdGroupDefault,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataFolder, repoFolder, archiveName, snapshotName := parseDataSnapshotArgs(args)

			r, err := repo.Open(repoFolder, false, archiveName)
			if err != nil {
				return err
			}

			diffs, err := r.Compare(archiveName, snapshotName, dataFolder)
			if err != nil {
				return err
			}

			p := gopts.Printer()
			if len(diffs) == 0 {
				p.Result("compare: no drift")
				return nil
			}
			for _, d := range diffs {
				p.Result("%s %s", d.Kind, d.Path)
			}
			return nil
		},
	}

	return cmd
}

// parseDataSnapshotArgs splits the DATA_FOLDER REPOSITORY_FOLDER
// [archive_name] [snapshot_name] positional pattern shared by compare and
// restore.
func parseDataSnapshotArgs(args []string) (dataFolder, repoFolder, archiveName, snapshotName string) {
	dataFolder, repoFolder = args[0], args[1]
	if len(args) > 2 {
		archiveName = args[2]
	}
	if len(args) > 3 {
		snapshotName = args[3]
	}
	return
}
