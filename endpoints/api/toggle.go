package api

import (
	"errors"
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/middlewares"
	"github.com/mariokirby1703/pemon-information-table/pagination"
	"github.com/mariokirby1703/pemon-information-table/util"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

// registerToggleEndpoint godoc
//
//	@Summary		Flip a pagination bar toggle
//	@Description	Delivers a change of the thumbnail toggle or the list toggle. When the response holds a redirect the client navigates there, otherwise it reloads the current page
//	@Tags			lists
//	@Param			list	path		string	true	"list name"
//	@Param			toggle	path		string	true	"toggle id"	Enums(style-toggle, dataset-toggle)
//	@Param			checked	formData	bool	true	"new checkbox state"
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	pagination.Result
//	@Failure		400	{object}	util.ErrorResponse
//	@Failure		404	{object}	util.ErrorResponse
//	@Router			/api/lists/{list}/toggles/{toggle} [post]
func (h handlers) registerToggleEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodPost,
		Path:   "/lists/:list/toggles/:toggle",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
			middlewares.Session(h.env.SessionTTL),
			middlewares.LoadParam(middlewares.LoadData{
				"checked": middlewares.LoadBool(true),
			}),
		},
		Handler: func(c echo.Context) error {
			v, err := h.view(c)
			if err != nil {
				return err
			}
			result, err := v.Dispatch(c.PathParam("toggle"), c.Get("checked").(bool))
			if errors.Is(err, pagination.ErrUnknownToggle) {
				return apis.NewNotFoundError("Toggle not found", err)
			}
			if err != nil {
				return util.NewErrorResponse(err, "Failed to apply toggle")
			}
			return c.JSON(http.StatusOK, result)
		},
	})
	return err
}
