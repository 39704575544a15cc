package main

import (
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/hapax/vaultbak/internal/filter"
	"github.com/hapax/vaultbak/internal/ui"
)

// GlobalOptions holds the flags common to every subcommand, grounded on
// restic/cmd/restic's GlobalOptions + PersistentPreRunE pattern. Per §9's
// "Global option state" design note, this struct exists so CLI parsing
// has somewhere to land without resorting to package-level variables;
// every operation still receives its own filter.Config value built from
// it rather than reading it back out of a global.
type GlobalOptions struct {
	Verbose bool
	Abort   bool

	Exclude []string
	Include []string
	Ignore  []string
	Keep    []string
	Select  []string

	stdout io.Writer
	stderr io.Writer
}

func newGlobalOptions() *GlobalOptions {
	return &GlobalOptions{stdout: os.Stdout, stderr: os.Stderr}
}

// AddFlags registers the flags shared by every subcommand.
func (g *GlobalOptions) AddFlags(f *pflag.FlagSet) {
	f.BoolVarP(&g.Verbose, "verbose", "v", false, "print progress and per-file messages")
	f.BoolVar(&g.Abort, "abort", false, "abort on the first per-file error instead of skipping it")
	f.StringArrayVar(&g.Exclude, "exclude", nil, "exclude files under `folder/` (repeatable)")
	f.StringArrayVar(&g.Include, "include", nil, "force-include `/folder/` even under an exclude (repeatable)")
	f.StringArrayVar(&g.Ignore, "ignore", nil, "exclude files matching `glob` (repeatable)")
	f.StringArrayVar(&g.Keep, "keep", nil, "force-include files matching `glob` (repeatable)")
	f.StringArrayVar(&g.Select, "select", nil, "restrict the operation to files matching `glob` (repeatable)")
}

// Printer returns the ui.Printer driven by --verbose.
func (g *GlobalOptions) Printer() *ui.Printer {
	p := ui.NewPrinter(g.Verbose)
	p.Stdout = g.stdout
	p.Stderr = g.stderr
	return p
}

// Filters assembles a filter.Config from the --exclude/--include/--ignore/
// --keep/--select flags for §4.2's "last matching filter wins" semantics:
// Exclude and Include share one ordered list (exclusive and inclusive
// respectively), as do Ignore/Keep. Within each list every --exclude
// (--ignore) entry precedes every --include (--keep) entry, whatever order
// the flags were given in.
func (g *GlobalOptions) Filters() filter.Config {
	var cfg filter.Config

	// pflag doesn't expose the relative parse order of --exclude and
	// --include, so this CLI applies excludes first and lets includes win,
	// matching the common case of "exclude a broad folder, then carve out
	// exceptions."
	for _, f := range g.Exclude {
		cfg.FolderFilters = append(cfg.FolderFilters, f)
		cfg.FolderFilterIsInclusive = append(cfg.FolderFilterIsInclusive, false)
	}
	for _, f := range g.Include {
		cfg.FolderFilters = append(cfg.FolderFilters, f)
		cfg.FolderFilterIsInclusive = append(cfg.FolderFilterIsInclusive, true)
	}
	for _, f := range g.Ignore {
		cfg.FileFilters = append(cfg.FileFilters, f)
		cfg.FileFilterIsInclusive = append(cfg.FileFilterIsInclusive, false)
	}
	for _, f := range g.Keep {
		cfg.FileFilters = append(cfg.FileFilters, f)
		cfg.FileFilterIsInclusive = append(cfg.FileFilterIsInclusive, true)
	}
	cfg.SelectedFileFilters = g.Select

	return cfg
}
