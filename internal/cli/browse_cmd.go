package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var opts ListOptions
	var when string

	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse matching tasks interactively",
		Args:  cobra.MaximumNArgs(1),
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
			if len(groups) == 0 {
				fmt.Fprintln(app.Out, "No matching tasks.")
				return nil
			}

			program := tea.NewProgram(newBrowseModel(groups), tea.WithOutput(app.Out))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}

	addListFlags(cmd, &opts, &when)
	return cmd
}
