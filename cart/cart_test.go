package cart

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())

	s.Add(Item{List: "pemons", ID: 1, Level: "Bloodbath"})
	s.Add(Item{List: "pemons", ID: 2, Level: "Sonic Wave"})

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Bloodbath", items[0].Level)
	assert.False(t, items[0].AddedAt.IsZero())

	items[0].Level = "changed"
	assert.Equal(t, "Bloodbath", s.Items()[0].Level)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
}

func TestStoreConcurrentAdd(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(Item{ID: i})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, s.Len())
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestJarSessionID(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	id, issued := NewJar(c).SessionID(time.Hour)
	require.True(t, issued)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})
	c, rec = newContext(req)
	again, issued := NewJar(c).SessionID(time.Hour)
	assert.False(t, issued)
	assert.Equal(t, id, again)
	assert.Empty(t, rec.Result().Cookies())
}

func TestJarRejectsForeignSessionID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})
	c, _ := newContext(req)

	id, issued := NewJar(c).SessionID(time.Hour)
	assert.True(t, issued)
	assert.NotEqual(t, "not-a-uuid", id)
}

func TestJarClear(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: uuid.NewString()})
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	c, rec := newContext(req)

	jar := NewJar(c)
	value, ok := jar.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	jar.Clear()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, cookie := range cookies {
		assert.Equal(t, -1, cookie.MaxAge)
		assert.Empty(t, cookie.Value)
	}
}
