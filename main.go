package main

import (
	"io"
	"log"
	"os"

	"github.com/mariokirby1703/pemon-information-table/browse"
	"github.com/mariokirby1703/pemon-information-table/builder"
	"github.com/mariokirby1703/pemon-information-table/config"
	"github.com/mariokirby1703/pemon-information-table/endpoints"
	"github.com/mariokirby1703/pemon-information-table/endpoints/api"
	"github.com/mariokirby1703/pemon-information-table/endpoints/site"
	"github.com/mariokirby1703/pemon-information-table/jobs"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/mariokirby1703/pemon-information-table/view"
	"github.com/mariokirby1703/pemon-information-table/web"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/pflag"
)

// @title						Pemon Information Table API
// @version					1.0
// @description				Sortable level grids of the pemon and demon lists.
// @BasePath					/
func main() {
	app := pocketbase.New()

	configPath := configFlag(app)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	env := &endpoints.Env{
		Fetcher:     levels.NewLoader(),
		DefaultList: cfg.DefaultList,
		SessionTTL:  cfg.SessionTTL,
	}
	app.OnAfterBootstrap().Add(func(e *core.BootstrapEvent) error {
		views, err := newViews(e.App, cfg)
		if err != nil {
			return err
		}
		env.Views = views
		return nil
	})

	site.RegisterEndpoints(app, env)
	api.RegisterEndpoints(app, env)
	jobs.Register(app, cfg, env)

	builder.Register(app, cfg)
	browse.Register(app, env)

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// configFlag registers --config on the root command and reads it right
// away, since the config decides which commands and lists exist.
func configFlag(app *pocketbase.PocketBase) string {
	var path string
	app.RootCmd.PersistentFlags().StringVar(&path, "config", "", "the YAML config file (defaults are used when empty)")

	eager := pflag.NewFlagSet("config", pflag.ContinueOnError)
	eager.ParseErrorsWhitelist.UnknownFlags = true
	eager.SetOutput(io.Discard)
	eager.StringVar(&path, "config", "", "")
	_ = eager.Parse(os.Args[1:])
	return path
}

func newViews(app core.App, cfg config.Config) (*view.Registry, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	views := view.NewRegistry(renderer, view.Options{
		Credit:       cfg.Credit,
		ThumbnailURL: cfg.ThumbnailURL,
		PageSize:     cfg.PageSize,
		ClassNames:   cfg.ClassNames,
	})
	for _, list := range cfg.Lists {
		dataset := levels.NewDataset(app.Logger().With("list", list.Name))
		if err := views.AddList(list.ListData, dataset); err != nil {
			return nil, err
		}
	}
	return views, nil
}
