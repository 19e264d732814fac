package builder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/mariokirby1703/pemon-information-table/config"
	"github.com/mariokirby1703/pemon-information-table/gdapi"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"
)

const (
	SourceGD        = "gd"
	SourceGDBrowser = "gdbrowser"
)

// NewSource returns the level source named by kind.
func NewSource(kind string, cfg config.Builder) (Source, error) {
	switch kind {
	case SourceGD:
		return gdapi.NewServerClient(cfg.GDServer, gdapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout})), nil
	case SourceGDBrowser, "":
		return gdapi.NewBrowserClient(cfg.GDBrowser, cfg.Timeout), nil
	}
	return nil, fmt.Errorf("unknown source %q, use %s or %s", kind, SourceGD, SourceGDBrowser)
}

func Register(app *pocketbase.PocketBase, cfg config.Config) {
	app.RootCmd.AddCommand(syncCommand(cfg), levelCommand(cfg))
}

func syncCommand(cfg config.Config) *cobra.Command {
	var source string
	var last int
	cmd := &cobra.Command{
		Use:   "sync [list]",
		Short: "Fetch the levels of a list's id file and merge them into its dataset",
		Args:  cobra.MaximumNArgs(1),
		Run: func(command *cobra.Command, args []string) {
			name := cfg.DefaultList
			if len(args) == 1 {
				name = args[0]
			}
			list, ok := cfg.List(name)
			if !ok {
				fmt.Printf("Unknown list %q\n", name)
				os.Exit(1)
			}
			output := list.Output
			if output == "" {
				output = list.Source
			}
			if levels.IsRemote(output) {
				fmt.Printf("Cannot write list %s to remote source %s\n", name, output)
				os.Exit(1)
			}
			src, err := NewSource(source, cfg.Builder)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			concurrency := cfg.Builder.Concurrency
			if source == SourceGD {
				// the server client is rate limited, parallel requests only queue up
				concurrency = 1
			}

			summary, err := Run(command.Context(), Options{
				IDs:         list.IDs,
				Output:      output,
				Last:        last,
				Concurrency: concurrency,
				Source:      src,
				Variant:     list.Variant,
				Out:         command.OutOrStdout(),
			})
			if err != nil {
				fmt.Println("Failed to sync list: ", err.Error())
				os.Exit(1)
			}
			fmt.Printf("Synced %d levels into %s (%d rows)\n", summary.Processed, output, summary.Total)
		},
	}
	cmd.Flags().StringVar(&source, "source", SourceGDBrowser, "level source: gd or gdbrowser")
	cmd.Flags().IntVar(&last, "last", cfg.Builder.Last, "only process the last N ids (0 = all)")
	return cmd
}

func levelCommand(cfg config.Config) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "level <id>",
		Short: "Print what the GD servers know about a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid level id %q", args[0])
			}
			var value interface{}
			if source == SourceGD {
				client := gdapi.NewServerClient(cfg.Builder.GDServer, gdapi.WithHTTPClient(&http.Client{Timeout: cfg.Builder.Timeout}))
				value, err = client.LevelInfo(command.Context(), id)
			} else {
				value, err = gdapi.NewBrowserClient(cfg.Builder.GDBrowser, cfg.Builder.Timeout).Level(command.Context(), id)
			}
			if err != nil {
				return err
			}
			enc := json.NewEncoder(command.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(value)
		},
	}
	cmd.Flags().StringVar(&source, "source", SourceGD, "level source: gd or gdbrowser")
	return cmd
}
