package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cmdGroupDefault = "default"

func newRootCommand(gopts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedupebak",
		Short: "A deduplicating local file backup engine",
		Long: `
dedupebak maintains a local, content-addressed repository of file backups.
Each backup records the data folder's tree as a new immutable snapshot;
file bodies are stored once per distinct content across every snapshot.
`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.AddGroup(&cobra.Group{ID: cmdGroupDefault, Title: "Available Commands:"})
	gopts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newBackupCommand(gopts),
		newCheckCommand(gopts),
		newCompareCommand(gopts),
		newRestoreCommand(gopts),
		newFindCommand(gopts),
		newListCommand(gopts),
	)

	return cmd
}

func main() {
	gopts := newGlobalOptions()
	err := newRootCommand(gopts).Execute()
	if err == nil {
		return
	}

	gopts.Printer().Error(err)
	os.Exit(1)
}
