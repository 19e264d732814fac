package api

import (
	"errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/cart"
	"github.com/mariokirby1703/pemon-information-table/middlewares"
	"github.com/mariokirby1703/pemon-information-table/util"
	"github.com/mariokirby1703/pemon-information-table/view"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

type Cart struct {
	Items []cart.Item `json:"items"`
}

// registerCartEndpoint godoc
//
//	@Summary		Session cart
//	@Description	Gives the levels the current session put in its cart, oldest first
//	@Tags			cart
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	Cart
//	@Router			/api/cart [get]
func (h handlers) registerCartEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/cart",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
			middlewares.Session(h.env.SessionTTL),
		},
		Handler: func(c echo.Context) error {
			return c.JSON(http.StatusOK, h.cart(c))
		},
	})
	return err
}

// registerCartAddEndpoint godoc
//
//	@Summary		Add to cart
//	@Description	Appends a level of a list to the cart of the current session
//	@Tags			cart
//	@Param			list	formData	string	true	"list name"
//	@Param			id		formData	int		true	"level id"	minimum(1)
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	Cart
//	@Failure		400	{object}	util.ErrorResponse
//	@Failure		404	{object}	util.ErrorResponse
//	@Router			/api/cart [post]
func (h handlers) registerCartAddEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodPost,
		Path:   "/cart",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
			middlewares.Session(h.env.SessionTTL),
			middlewares.LoadParam(middlewares.LoadData{
				"list": middlewares.LoadString(true),
				"id":   middlewares.LoadInt(true, validation.Min(1)),
			}),
		},
		Handler: func(c echo.Context) error {
			list, dataset, err := h.env.Views.Dataset(c.Get("list").(string))
			if errors.Is(err, view.ErrUnknownList) {
				return apis.NewNotFoundError("List not found", err)
			}
			if err != nil {
				return util.NewErrorResponse(err, "Failed to open list")
			}
			id := c.Get("id").(int)
			rows, _ := dataset.Snapshot()
			for _, row := range rows {
				if row.ID != id {
					continue
				}
				store := h.env.Views.Cart(c.Get(middlewares.SessionKey).(string))
				store.Add(cart.Item{List: list.Name, ID: row.ID, Level: row.Level})
				return c.JSON(http.StatusOK, Cart{Items: store.Items()})
			}
			return apis.NewNotFoundError("Level not found", nil)
		},
	})
	return err
}

// registerCartClearEndpoint godoc
//
//	@Summary		Clear cart
//	@Description	Removes every level from the cart of the current session
//	@Tags			cart
//	@Schemes		http https
//	@Success		204
//	@Router			/api/cart [delete]
func (h handlers) registerCartClearEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodDelete,
		Path:   "/cart",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
			middlewares.Session(h.env.SessionTTL),
		},
		Handler: func(c echo.Context) error {
			h.env.Views.Cart(c.Get(middlewares.SessionKey).(string)).Clear()
			return c.NoContent(http.StatusNoContent)
		},
	})
	return err
}

func (h handlers) cart(c echo.Context) Cart {
	items := h.env.Views.Cart(c.Get(middlewares.SessionKey).(string)).Items()
	if items == nil {
		items = []cart.Item{}
	}
	return Cart{Items: items}
}
