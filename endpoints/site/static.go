package site

import (
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/web"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

func (h handlers) registerStaticEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method:  http.MethodGet,
		Path:    "/static/*",
		Handler: apis.StaticDirectoryHandler(web.Static(), false),
	})
	return err
}
