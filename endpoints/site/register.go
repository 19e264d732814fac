package site

import (
	"github.com/mariokirby1703/pemon-information-table/endpoints"
	"github.com/mariokirby1703/pemon-information-table/util"
	"github.com/pocketbase/pocketbase/core"
)

type handlers struct {
	env *endpoints.Env
}

// RegisterEndpoints registers the html pages, static assets and api docs
func RegisterEndpoints(app core.App, env *endpoints.Env) {
	h := handlers{env: env}
	util.RegisterEndpoints(app, "",
		h.registerIndexEndpoint,
		h.registerListPageEndpoint,
		h.registerStaticEndpoint,
		h.registerSwaggerEndpoint,
	)
}
