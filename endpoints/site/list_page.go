package site

import (
	"bytes"
	"errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/middlewares"
	"github.com/mariokirby1703/pemon-information-table/util"
	"github.com/mariokirby1703/pemon-information-table/view"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

// registerListPageEndpoint godoc
//
//	@Summary		Level grid page
//	@Description	Renders one page of the level grid of a list as html. The pagination bar carries the thumbnail and list toggles once the list has rows
//	@Tags			site
//	@Param			list	path	string	true	"list name"
//	@Param			page	query	int		false	"select page"	default(1)	minimum(1)
//	@Param			sort	query	string	false	"field to sort by"
//	@Param			dir		query	string	false	"sort direction"	Enums(asc, desc)	default(asc)
//	@Param			q		query	string	false	"quick filter"
//	@Schemes		http https
//	@Produce		html
//	@Success		200
//	@Failure		400	{object}	util.ErrorResponse
//	@Failure		404	{object}	util.ErrorResponse
//	@Router			/lists/{list} [get]
func (h handlers) registerListPageEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/lists/:list",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
			middlewares.Session(h.env.SessionTTL),
			middlewares.LoadParam(QueryParams()),
		},
		Handler: func(c echo.Context) error {
			v, err := h.env.Views.Get(c.Get(middlewares.SessionKey).(string), c.PathParam("list"))
			if errors.Is(err, view.ErrUnknownList) {
				return apis.NewNotFoundError("List not found", err)
			}
			if err != nil {
				return util.NewErrorResponse(err, "Failed to open list")
			}
			var buf bytes.Buffer
			err = v.Render(&buf, QueryFrom(c))
			if errors.Is(err, grid.ErrUnknownColumn) {
				return util.NewErrorResponse(err, "Cannot sort by "+c.Get("sort").(string))
			}
			if err != nil {
				return util.NewStatusErrorResponse(http.StatusInternalServerError, err, "Failed to render list")
			}
			return c.HTMLBlob(http.StatusOK, buf.Bytes())
		},
	})
	return err
}

// QueryParams loads the grid query shared by the page and the levels api.
func QueryParams() middlewares.LoadData {
	return middlewares.LoadData{
		"page": middlewares.AddDefault(1, middlewares.LoadInt(false, validation.Min(1))),
		"sort": middlewares.AddDefault("", middlewares.LoadString(false, validation.Length(0, 32))),
		"dir":  middlewares.AddDefault("asc", middlewares.LoadString(false, validation.In("asc", "desc"))),
		"q":    middlewares.LoadString(false, validation.Length(0, 100)),
	}
}

func QueryFrom(c echo.Context) view.Query {
	return view.Query{
		Page:   c.Get("page").(int),
		Sort:   c.Get("sort").(string),
		Desc:   c.Get("dir").(string) == "desc",
		Filter: util.UseOtherIfNil(c.Get("q"), "").(string),
	}
}
