package cart

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

const SessionCookie = "session_id"

// Jar reads and writes the cookies of one request.
type Jar struct {
	c echo.Context
}

func NewJar(c echo.Context) Jar {
	return Jar{c: c}
}

func (j Jar) Get(name string) (string, bool) {
	cookie, err := j.c.Cookie(name)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (j Jar) Set(name, value string, maxAge time.Duration) {
	j.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (j Jar) Delete(name string) {
	j.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear deletes every cookie the request carried.
func (j Jar) Clear() {
	for _, cookie := range j.c.Cookies() {
		j.Delete(cookie.Name)
	}
}

// SessionID returns the session id of the request, issuing a new one when
// the cookie is missing or does not hold a uuid.
func (j Jar) SessionID(maxAge time.Duration) (id string, issued bool) {
	if value, ok := j.Get(SessionCookie); ok {
		if _, err := uuid.Parse(value); err == nil {
			return value, false
		}
	}
	id = uuid.NewString()
	j.Set(SessionCookie, id, maxAge)
	return id, true
}
