package browse

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mariokirby1703/pemon-information-table/endpoints"
	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"
)

// Register adds the browse command. The views of env are read when the
// command runs, after the app bootstrapped.
func Register(app *pocketbase.PocketBase, env *endpoints.Env) {
	app.RootCmd.AddCommand(&cobra.Command{
		Use:   "browse [list]",
		Short: "Page through a level list in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			name := env.DefaultList
			if len(args) == 1 {
				name = args[0]
			}
			for _, list := range env.Views.Lists() {
				_, dataset, err := env.Views.Dataset(list.Name)
				if err != nil {
					return err
				}
				if err := dataset.Load(command.Context(), env.Fetcher, list.Source); err != nil {
					fmt.Fprintf(command.ErrOrStderr(), "Failed to load %s: %v\n", list.Name, err)
				}
			}

			m, err := New(env.Views, name)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(command.Context())).Run()
			return err
		},
	})
}
