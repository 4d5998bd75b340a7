// Package cli wires the agmd commands: the default scan-and-print run and
// the interactive browser.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/utfq/agmd/internal/cli/formatter"
	"github.com/utfq/agmd/internal/domain"
	"github.com/utfq/agmd/internal/repository"
	"github.com/utfq/agmd/internal/schedule"
)

// App holds the collaborators CLI commands run against.
type App struct {
	// Cache is the scan cache; nil disables caching entirely.
	Cache repository.TaskCacheRepo
	// IgnoreName is the tool ignore file consulted at the scan root.
	IgnoreName string
	// Out receives all rendered output.
	Out io.Writer
	// Hyperlinks enables OSC 8 links on file headers (tty only).
	Hyperlinks bool
	// Plain disables styled rendering.
	Plain bool
	// Today overrides the evaluation date; nil means time.Now.
	Today func() time.Time
}

func (app *App) today() time.Time {
	if app.Today != nil {
		return app.Today()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "agmd" command.
func NewRootCmd(app *App) *cobra.Command {
	var opts ListOptions
	var when string

	root := &cobra.Command{
		Use:   "agmd [dir]",
		Short: "Find date-annotated tasks in markdown notes",
		Long: `agmd scans a directory of markdown files for task-list items carrying an
inline agmd: scheduling annotation and prints the ones active in the
requested date window, grouped by file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := resolveQuery(cmd, when)
			if err != nil {
				return err
			}
			opts.Query = query

			groups, err := app.Collect(cmd.Context(), rootArg(args), opts)
			if err != nil {
				return err
			}
			app.printGroups(groups)
			return nil
		},
	}

	addListFlags(root, &opts, &when)
	root.AddCommand(newBrowseCmd(app))

	return root
}

// addListFlags registers the filtering flags shared by the root run and the
// browser.
func addListFlags(cmd *cobra.Command, opts *ListOptions, when *string) {
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Print every annotated task, with no date filter")
	cmd.Flags().BoolVarP(&opts.IncludeDone, "done", "d", false, "Include checked-off tasks")
	cmd.Flags().StringVarP(when, "when", "w", "0", "Day offset or range relative to today (e.g. 0, -1, -1..3, ..)")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "Re-parse every file, bypassing the scan cache")
}

// resolveQuery parses --when, defaulting to today when the flag is unset.
// A malformed query aborts the run instead of silently defaulting.
func resolveQuery(cmd *cobra.Command, when string) (domain.DateQuery, error) {
	if !cmd.Flags().Changed("when") {
		return domain.DefaultQuery(), nil
	}
	return schedule.ParseQuery(when)
}

func rootArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}

func (app *App) printGroups(groups []FileTasks) {
	for _, g := range groups {
		if app.Plain {
			fmt.Fprintf(app.Out, "==== %s ====\n", g.Path)
		} else {
			fmt.Fprintln(app.Out, formatter.FileHeader(g.Path, g.AbsPath, app.Hyperlinks))
		}
		for _, task := range g.Tasks {
			if app.Plain {
				fmt.Fprintln(app.Out, formatter.FormatTask(task))
			} else {
				fmt.Fprintln(app.Out, formatter.StyledTask(task))
			}
		}
	}
}
