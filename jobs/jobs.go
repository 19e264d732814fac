package jobs

import (
	"context"
	"time"

	"github.com/mariokirby1703/pemon-information-table/config"
	"github.com/mariokirby1703/pemon-information-table/endpoints"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/cron"
)

// Register starts loading every list in the background when the server
// starts, so a slow remote source does not hold up the listener, and keeps the lists and
// sessions fresh while it runs: scheduled reloads, file watchers for local
// sources and eviction of idle sessions.
func Register(app core.App, cfg config.Config, env *endpoints.Env) {
	var watchers []*levels.Watcher
	scheduler := cron.New()

	app.OnBeforeServe().Add(func(e *core.ServeEvent) error {
		ctx := context.Background()
		go ReloadLists(e.App, env)()

		if cfg.ReloadCron != "" {
			if err := scheduler.Add("reload", cfg.ReloadCron, ReloadLists(e.App, env)); err != nil {
				return err
			}
		}
		if err := scheduler.Add("evict", cfg.EvictCron, EvictSessions(e.App, env, cfg.SessionTTL)); err != nil {
			return err
		}
		scheduler.Start()

		if cfg.Watch {
			watchers = startWatchers(ctx, e.App, env)
		}
		return nil
	})

	app.OnTerminate().Add(func(e *core.TerminateEvent) error {
		scheduler.Stop()
		for _, w := range watchers {
			w.Stop()
		}
		return nil
	})
}

// ReloadLists fetches every list again. Failed loads keep the previous rows.
func ReloadLists(app core.App, env *endpoints.Env) func() {
	return func() {
		l := app.Logger()
		for _, list := range env.Views.Lists() {
			_, dataset, err := env.Views.Dataset(list.Name)
			if err != nil {
				l.Error("Failed to find dataset", "list", list.Name, "error", err)
				continue
			}
			// the dataset logs failed loads itself
			_ = dataset.Load(context.Background(), env.Fetcher, list.Source)
		}
	}
}

// EvictSessions drops views and carts of sessions idle for longer than ttl.
func EvictSessions(app core.App, env *endpoints.Env, ttl time.Duration) func() {
	return func() {
		if n := env.Views.Evict(ttl); n > 0 {
			app.Logger().Info("Evicted idle views", "views", n, "sessions", len(env.Views.Sessions()))
		}
	}
}

func startWatchers(ctx context.Context, app core.App, env *endpoints.Env) []*levels.Watcher {
	l := app.Logger()
	var watchers []*levels.Watcher
	for _, list := range env.Views.Lists() {
		if levels.IsRemote(list.Source) {
			continue
		}
		_, dataset, err := env.Views.Dataset(list.Name)
		if err != nil {
			continue
		}
		w, err := levels.NewWatcher(dataset, env.Fetcher, list.Source, l.With("list", list.Name))
		if err != nil {
			l.Error("Failed to create watcher", "list", list.Name, "error", err)
			continue
		}
		if err := w.Start(ctx); err != nil {
			l.Error("Failed to watch list", "list", list.Name, "error", err)
			w.Stop()
			continue
		}
		watchers = append(watchers, w)
	}
	return watchers
}
