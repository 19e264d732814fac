package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/safehtml"
	"github.com/mariokirby1703/pemon-information-table/columns"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []levels.Level {
	return []levels.Level{
		{Number: 1, Level: "Nine Circles", Creator: "Zobros", ID: 4284013, Difficulty: "Hard Demon", Rating: "Featured", Showcase: "https://www.youtube.com/watch?v=abc", TwoPlayer: true},
		{Number: 2, Level: "Bloodbath", Creator: "Riot", ID: 10565740, Difficulty: "Extreme Demon", Rating: "Epic"},
	}
}

func render(t *testing.T, g *grid.Grid, n int) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)

	list := levels.Pemons()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, NewPageData(list, g.Page(n), []levels.ListData{levels.Pemons(), levels.Demons()})))
	return buf.String()
}

func newGrid(t *testing.T) *grid.Grid {
	t.Helper()
	reg, err := columns.NewRegistry(levels.Pemons())
	require.NoError(t, err)
	g := grid.New(reg.Specs())
	g.SetRowData(sampleRows())
	return g
}

func TestRenderGridPage(t *testing.T) {
	out := render(t, newGrid(t), 1)

	assert.Contains(t, out, `id="grid-pagination-panel"`)
	assert.Contains(t, out, "1 to 2 of 2")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, `class="grid-cell hard "`)
	assert.Contains(t, out, `class="grid-cell extreme "`)
	assert.Contains(t, out, `href="https://www.youtube.com/watch?v=abc"`)
	assert.Contains(t, out, `rel="noopener"`)
	assert.Contains(t, out, `<input type="checkbox" disabled checked>`)
	assert.Contains(t, out, `href="/lists/demons"`)
	assert.NotContains(t, out, "thumbnail-row")
}

func TestRenderWithoutRowsHasNoPagination(t *testing.T) {
	reg, err := columns.NewRegistry(levels.Pemons())
	require.NoError(t, err)
	g := grid.New(reg.Specs())
	g.SetRowData(nil)

	out := render(t, g, 1)
	assert.NotContains(t, out, "grid-pagination-panel")
	assert.Contains(t, out, "No rows to show")
}

func TestRenderRowStyle(t *testing.T) {
	g := newGrid(t)
	g.SetRowStyle(func(row levels.Level) grid.RowStyle {
		return grid.RowStyle{
			Thumbnail: "https://thumbs.example/1.webp",
			Style: safehtml.StyleFromProperties(safehtml.StyleProperties{
				BackgroundImageURLs: []string{"https://thumbs.example/1.webp"},
			}),
		}
	})

	out := render(t, g, 1)
	assert.Equal(t, 2, strings.Count(out, "thumbnail-row"))
	assert.Contains(t, out, "background-image")
}

func TestNewPageDataLinks(t *testing.T) {
	g := newGrid(t)
	g.SetPageSize(1)
	require.NoError(t, g.SetSort("level", false))
	g.SetQuickFilter("")

	data := NewPageData(levels.Pemons(), g.Page(2), nil)

	assert.Equal(t, "/lists/pemons?dir=asc&sort=level", data.Pager.First)
	assert.Equal(t, "/lists/pemons?dir=asc&sort=level", data.Pager.Prev)
	assert.Equal(t, "/lists/pemons?dir=asc&page=3&sort=level", data.Pager.Next)
	assert.Equal(t, "asc", data.Dir)

	for _, h := range data.Headers {
		switch h.Field {
		case "level":
			assert.Equal(t, "/lists/pemons?dir=desc&sort=level", h.Href)
		case "creator":
			assert.Equal(t, "/lists/pemons?dir=asc&sort=creator", h.Href)
		}
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"grid.css", "grid.js"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		require.NoError(t, f.Close())
	}
}
