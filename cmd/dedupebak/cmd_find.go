package main

import (
	"github.com/spf13/cobra"

	"github.com/hapax/vaultbak/internal/repo"
)

func newFindCommand(gopts *GlobalOptions) *cobra.Command {
	var archiveGlob, snapshotGlob string

	cmd := &cobra.Command{
		Use:     "find REPOSITORY_FOLDER NAME_PATTERN",
		Short:   "Search every snapshot's file tree for names matching a glob",
		Args:    cobra.ExactArgs(2),
		GroupID: cmdGroupDefault,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoFolder, namePattern := args[0], args[1]

			r, err := repo.Open(repoFolder, false, "")
			if err != nil {
				return err
			}

			matches, err := r.Find(archiveGlob, snapshotGlob, namePattern)
			if err != nil {
				return err
			}

			p := gopts.Printer()
			if len(matches) == 0 {
				p.Result("find: no matches")
				return nil
			}
			for _, m := range matches {
				p.Result("%s/%s: %s", m.ArchiveName, m.SnapshotName, m.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveGlob, "archive", "", "restrict the search to archives matching `glob`")
	cmd.Flags().StringVar(&snapshotGlob, "snapshot", "", "restrict the search to snapshots matching `glob`")

	return cmd
}
