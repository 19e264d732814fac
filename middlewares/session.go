package middlewares

import (
	"github.com/labstack/echo/v5"
	"github.com/mariokirby1703/pemon-information-table/cart"
	"time"
)

const SessionKey = "session"

// Session makes sure every request carries a session id cookie and stores
// the id in the context under SessionKey.
func Session(maxAge time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := cart.NewJar(c).SessionID(maxAge)
			c.Set(SessionKey, id)
			return next(c)
		}
	}
}
