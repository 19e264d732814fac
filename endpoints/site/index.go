package site

import (
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/web"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

func (h handlers) registerIndexEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/",
		Handler: func(c echo.Context) error {
			return c.Redirect(http.StatusFound, web.ListPath(h.env.DefaultList))
		},
	})
	return err
}
