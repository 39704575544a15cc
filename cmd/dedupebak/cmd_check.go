package main

import (
	"github.com/spf13/cobra"

	"github.com/hapax/vaultbak/internal/repo"
)

func newCheckCommand(gopts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check REPOSITORY_FOLDER [archive_name] [snapshot_name]",
		Short:   "Verify that a snapshot's blobs exist and match their recorded size",
		Args:    cobra.RangeArgs(1, 3),
		GroupID: cmdGroupDefault,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoFolder, archiveName, snapshotName := parseSnapshotArgs(args)

			r, err := repo.Open(repoFolder, false, archiveName)
			if err != nil {
				return err
			}

			issues, err := r.Check(archiveName, snapshotName)
			if err != nil {
				return err
			}

			p := gopts.Printer()
			if len(issues) == 0 {
				p.Result("check: no issues found")
				return nil
			}
			for _, issue := range issues {
				p.Result("check: %s: %v", issue.Path, issue.Err)
			}
			return nil
		},
	}

	return cmd
}

// parseSnapshotArgs splits check's REPOSITORY_FOLDER [archive_name]
// [snapshot_name] positionals; compare and restore use
// parseDataSnapshotArgs instead.
func parseSnapshotArgs(args []string) (repoFolder, archiveName, snapshotName string) {
	repoFolder = args[0]
	if len(args) > 1 {
		archiveName = args[1]
	}
	if len(args) > 2 {
		snapshotName = args[2]
	}
	return
}
