package api

import (
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/cart"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"net/http"
)

type Session struct {
	SessionID string `json:"session_id"`
	Issued    bool   `json:"issued"`
	CartItems int    `json:"cart_items"`
}

// registerSessionEndpoint godoc
//
//	@Summary		Session id
//	@Description	Gives the session id cookie of the caller, issuing one when it is missing
//	@Tags			session
//	@Schemes		http https
//	@Produce		json
//	@Success		200	{object}	Session
//	@Router			/api/session [get]
func (h handlers) registerSessionEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodGet,
		Path:   "/session",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
		},
		Handler: func(c echo.Context) error {
			id, issued := cart.NewJar(c).SessionID(h.env.SessionTTL)
			return c.JSON(http.StatusOK, Session{
				SessionID: id,
				Issued:    issued,
				CartItems: h.env.Views.Cart(id).Len(),
			})
		},
	})
	return err
}

// registerSessionDeleteEndpoint godoc
//
//	@Summary		End session
//	@Description	Deletes every cookie of the caller and forgets the views and cart of its session
//	@Tags			session
//	@Schemes		http https
//	@Success		204
//	@Router			/api/session [delete]
func (h handlers) registerSessionDeleteEndpoint(e *echo.Group, app core.App) error {
	_, err := e.AddRoute(echo.Route{
		Method: http.MethodDelete,
		Path:   "/session",
		Middlewares: []echo.MiddlewareFunc{
			apis.ActivityLogger(app),
		},
		Handler: func(c echo.Context) error {
			jar := cart.NewJar(c)
			if id, ok := jar.Get(cart.SessionCookie); ok {
				h.env.Views.DropSession(id)
			}
			jar.Clear()
			return c.NoContent(http.StatusNoContent)
		},
	})
	return err
}
