package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/mariokirby1703/pemon-information-table/view"
	"github.com/mariokirby1703/pemon-information-table/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (*Model, *levels.Dataset) {
	t.Helper()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	views := view.NewRegistry(renderer, view.Options{PageSize: 2})
	pemons, demons := levels.NewDataset(nil), levels.NewDataset(nil)
	require.NoError(t, views.AddList(levels.Pemons(), pemons))
	require.NoError(t, views.AddList(levels.Demons(), demons))
	pemons.Replace([]levels.Level{
		{Number: 1, Level: "Nine Circles", Creator: "Zobros", ID: 4284013, Difficulty: "Hard Demon", Rating: "Featured"},
		{Number: 2, Level: "Bloodbath", Creator: "Riot", ID: 10565740, Difficulty: "Extreme Demon", Rating: "Epic"},
		{Number: 3, Level: "Acu", Creator: "neigefeu", ID: 61079355, Difficulty: "Extreme Demon", Rating: "Legendary"},
	})

	m, err := New(views, "pemons")
	require.NoError(t, err)
	return m, demons
}

func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestPaging(t *testing.T) {
	m, _ := newModel(t)
	assert.Contains(t, m.View(), "Pemon Information Table")
	assert.Contains(t, m.View(), "1 to 2 of 3")

	press(m, "right")
	assert.Contains(t, m.View(), "3 to 3 of 3")
	press(m, "right")
	assert.Equal(t, 2, m.page.Number)
	press(m, "left")
	assert.Contains(t, m.View(), "Page 1 of 2")
}

func TestSortKeys(t *testing.T) {
	m, _ := newModel(t)
	press(m, "tab")
	assert.Contains(t, m.View(), "sorted by number asc")
	press(m, "tab")
	assert.Equal(t, "level", m.page.Sort)
	assert.Equal(t, "Acu", m.page.Rows[0].Level.Level)

	press(m, "r")
	assert.True(t, m.page.Desc)
	assert.Equal(t, "Nine Circles", m.page.Rows[0].Level.Level)
}

func TestStyleToggleFollowsController(t *testing.T) {
	m, _ := newModel(t)
	assert.Contains(t, m.View(), "[ ] Thumbnails")

	press(m, "t")
	assert.True(t, m.view.Controller().Enabled())
	assert.Contains(t, m.View(), "[x]")
	assert.False(t, m.page.Rows[0].Style.IsZero())

	m.view.Controller().SetEnabled(false)
	assert.Contains(t, m.View(), "[ ] Thumbnails")
}

func TestSwitchList(t *testing.T) {
	m, demons := newModel(t)
	press(m, "t")
	press(m, "d")
	assert.Equal(t, "demons", m.view.List().Name)
	assert.Contains(t, m.View(), "Demon Information Table")
	assert.Contains(t, m.View(), "No rows to show")
	assert.False(t, m.view.Controller().Enabled())

	demons.Replace([]levels.Level{{Number: 1, Level: "Tartarus", ID: 59767227}})
	press(m, "right")
	assert.Contains(t, m.View(), "1 to 1 of 1")

	press(m, "d")
	assert.Equal(t, "pemons", m.view.List().Name)
	assert.True(t, m.view.Controller().Enabled())
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUnknownList(t *testing.T) {
	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	_, err = New(view.NewRegistry(renderer, view.Options{}), "nope")
	assert.ErrorIs(t, err, view.ErrUnknownList)
}

func TestNextSortable(t *testing.T) {
	cols := []grid.Column{{Field: "a", Sortable: true}, {Field: "b"}, {Field: "c", Sortable: true}}
	assert.Equal(t, "a", nextSortable(cols, ""))
	assert.Equal(t, "c", nextSortable(cols, "a"))
	assert.Equal(t, "", nextSortable(cols, "c"))
}
