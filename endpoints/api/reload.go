package api

import (
	"errors"
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/util"
	"github.com/mariokirby1703/pemon-information-table/view"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
	"time"
)

type ReloadResult struct {
	List     string    `json:"list"`
	Rows     int       `json:"rows"`
	Version  uint64    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
}

// registerReloadEndpoint godoc
//
//	@Summary		Reload a list
//	@Description	Fetches the source of a list again and replaces all of its rows. When the fetch fails the previous rows stay
//	@Tags			lists
//	@Param			list	path	string	true	"list name"
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	ReloadResult
//	@Failure		404	{object}	util.ErrorResponse
//	@Failure		502	{object}	util.ErrorResponse
//	@Router			/api/lists/{list}/reload [post]
func (h handlers) registerReloadEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodPost,
		Path:   "/lists/:list/reload",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
		},
		Handler: func(c echo.Context) error {
			list, dataset, err := h.env.Views.Dataset(c.PathParam("list"))
			if errors.Is(err, view.ErrUnknownList) {
				return apis.NewNotFoundError("List not found", err)
			}
			if err != nil {
				return util.NewErrorResponse(err, "Failed to open list")
			}
			err = dataset.Load(c.Request().Context(), h.env.Fetcher, list.Source)
			if err != nil {
				return util.NewStatusErrorResponse(http.StatusBadGateway, err, "Failed to load level data")
			}
			return c.JSON(http.StatusOK, ReloadResult{
				List:     list.Name,
				Rows:     dataset.Len(),
				Version:  dataset.Version(),
				LoadedAt: dataset.LoadedAt(),
			})
		},
	})
	return err
}
