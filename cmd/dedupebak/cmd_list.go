package main

import (
	"github.com/spf13/cobra"

	"github.com/hapax/vaultbak/internal/repo"
	"github.com/hapax/vaultbak/internal/ui"
)

func newListCommand(gopts *GlobalOptions) *cobra.Command {
	var archiveGlob, snapshotGlob string

	cmd := &cobra.Command{
		Use:     "list REPOSITORY_FOLDER",
		Short:   "List archives and their snapshot names",
		Args:    cobra.ExactArgs(1),
		GroupID: cmdGroupDefault,
		RunE: func(cmd *cobra.Command, args []string) error {
			repoFolder := args[0]

			r, err := repo.Open(repoFolder, false, "")
			if err != nil {
				return err
			}

			summaries, err := r.List(archiveGlob, snapshotGlob)
			if err != nil {
				return err
			}

			p := gopts.Printer()
			for _, sum := range summaries {
				p.Result("%s:", sum.ArchiveName)
				for _, sn := range sum.Snapshots {
					p.Result("  %-24s %s  %5d folders  %5d files  %s",
						sn.Name, ui.FormatTime(sn.Time), sn.FolderCount, sn.FileCount, ui.FormatBytes(sn.TotalBytes))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&archiveGlob, "archive", "", "restrict to archives matching `glob`")
	cmd.Flags().StringVar(&snapshotGlob, "snapshot", "", "restrict to snapshots matching `glob`")

	return cmd
}
