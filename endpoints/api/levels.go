package api

import (
	"errors"
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/endpoints/site"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/mariokirby1703/pemon-information-table/middlewares"
	"github.com/mariokirby1703/pemon-information-table/util"
	"github.com/mariokirby1703/pemon-information-table/view"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

type LevelsPage struct {
	List   string         `json:"list"`
	Page   int            `json:"page"`
	Pages  int            `json:"pages"`
	Total  int            `json:"total"`
	Sort   string         `json:"sort,omitempty"`
	Dir    string         `json:"dir,omitempty"`
	Filter string         `json:"filter,omitempty"`
	Levels []levels.Level `json:"levels"`
}

// registerLevelsEndpoint godoc
//
//	@Summary		Paged levels
//	@Description	Gives one page of the sorted and filtered levels of a list, exactly as the grid shows them
//	@Tags			lists
//	@Param			list	path	string	true	"list name"
//	@Param			page	query	int		false	"select page"	default(1)	minimum(1)
//	@Param			sort	query	string	false	"field to sort by"
//	@Param			dir		query	string	false	"sort direction"	Enums(asc, desc)	default(asc)
//	@Param			q		query	string	false	"quick filter"
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	LevelsPage
//	@Failure		400	{object}	util.ErrorResponse
//	@Failure		404	{object}	util.ErrorResponse
//	@Router			/api/lists/{list}/levels [get]
func (h handlers) registerLevelsEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/lists/:list/levels",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
			middlewares.Session(h.env.SessionTTL),
			middlewares.LoadParam(site.QueryParams()),
		},
		Handler: func(c echo.Context) error {
			v, err := h.view(c)
			if err != nil {
				return err
			}
			page, err := v.Page(site.QueryFrom(c))
			if errors.Is(err, grid.ErrUnknownColumn) {
				return util.NewErrorResponse(err, "Cannot sort by "+c.Get("sort").(string))
			}
			if err != nil {
				return util.NewErrorResponse(err, "Failed to load levels")
			}
			result := LevelsPage{
				List:   v.List().Name,
				Page:   page.Number,
				Pages:  page.Count,
				Total:  page.TotalRows,
				Sort:   page.Sort,
				Filter: page.Filter,
				Levels: util.MapSlice(page.Rows, func(row grid.Row) levels.Level { return row.Level }),
			}
			if page.Sort != "" {
				result.Dir = c.Get("dir").(string)
			}
			return c.JSON(http.StatusOK, result)
		},
	})
	return err
}

// view returns the view of the requesting session on the list path param.
func (h handlers) view(c echo.Context) (*view.View, error) {
	v, err := h.env.Views.Get(c.Get(middlewares.SessionKey).(string), c.PathParam("list"))
	if errors.Is(err, view.ErrUnknownList) {
		return nil, apis.NewNotFoundError("List not found", err)
	}
	if err != nil {
		return nil, util.NewErrorResponse(err, "Failed to open list")
	}
	return v, nil
}
