package api

import (
	"github.com/mariokirby1703/pemon-information-table/endpoints"
	"github.com/mariokirby1703/pemon-information-table/util"
	"github.com/pocketbase/pocketbase/core"
)

type handlers struct {
	env *endpoints.Env
}

// RegisterEndpoints registers all routes that are under /api
func RegisterEndpoints(app core.App, env *endpoints.Env) {
	h := handlers{env: env}
	util.RegisterEndpoints(app, "/api",
		h.registerLevelsEndpoint,
		h.registerToggleEndpoint,
		h.registerReloadEndpoint,
		h.registerCartEndpoint,
		h.registerCartAddEndpoint,
		h.registerCartClearEndpoint,
		h.registerSessionEndpoint,
		h.registerSessionDeleteEndpoint,
	)
}
