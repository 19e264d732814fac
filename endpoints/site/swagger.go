package site

import (
	echoSwagger "github.com/Simolater/echo-swagger"
	"github.com/labstack/echo/v5"
	_ "github.com/mariokirby1703/pemon-information-table/docs"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

func (h handlers) registerSwaggerEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method:  http.MethodGet,
		Path:    "/swagger/*",
		Handler: echoSwagger.WrapHandler,
	})
	return err
}
