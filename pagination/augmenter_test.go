package pagination

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const gridDocument = `<html><body><div class="grid">
<table><tbody><tr><td>Bloodbath</td></tr></tbody></table>
<div id="grid-pagination-panel" class="grid-paging-panel"><span class="grid-paging-summary">1 to 1 of 1</span></div>
</div></body></html>`

type fakeSwitch struct {
	enabled bool
	calls   int
}

func (s *fakeSwitch) Enabled() bool { return s.enabled }

func (s *fakeSwitch) SetEnabled(flag bool) bool {
	s.calls++
	changed := s.enabled != flag
	s.enabled = flag
	return changed
}

func parse(t *testing.T, doc string) *html.Node {
	t.Helper()
	n, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

func TestEnsureMountedIsIdempotent(t *testing.T) {
	sw := &fakeSwitch{}
	a := New("Made by Sona", StyleToggle("Thumbnails", "/api/lists/pemons/toggles/style-toggle", sw))
	doc := parse(t, gridDocument)

	require.True(t, a.EnsureMounted(doc))
	require.True(t, a.EnsureMounted(doc))

	assert.Equal(t, 1, CountByID(doc, CreditID))
	assert.Equal(t, 1, CountByID(doc, StyleToggleID))

	panel := FindByID(doc, PanelID)
	require.NotNil(t, panel)
	assert.Equal(t, CreditID, getAttr(panel.FirstChild, "id"))

	input := FindByID(doc, StyleToggleID)
	assert.Equal(t, "checkbox", getAttr(input, "type"))
	assert.Equal(t, "/api/lists/pemons/toggles/style-toggle", getAttr(input, "data-endpoint"))
}

func TestEnsureMountedWithoutPanel(t *testing.T) {
	a := New("credit", StyleToggle("Thumbnails", "", &fakeSwitch{}))
	doc := parse(t, `<html><body><p>No rows</p></body></html>`)

	var before strings.Builder
	require.NoError(t, html.Render(&before, doc))

	assert.False(t, a.EnsureMounted(doc))

	var after strings.Builder
	require.NoError(t, html.Render(&after, doc))
	assert.Equal(t, before.String(), after.String())
	assert.Nil(t, FindByID(doc, CreditID))
}

func TestEnsureMountedReappliesCheckedState(t *testing.T) {
	sw := &fakeSwitch{}
	a := New("", StyleToggle("Thumbnails", "", sw))
	doc := parse(t, gridDocument)

	require.True(t, a.EnsureMounted(doc))
	assert.False(t, HasAttr(FindByID(doc, StyleToggleID), "checked"))
	assert.Nil(t, FindByID(doc, CreditID))

	sw.enabled = true
	require.True(t, a.EnsureMounted(doc))
	assert.True(t, HasAttr(FindByID(doc, StyleToggleID), "checked"))

	sw.enabled = false
	require.True(t, a.EnsureMounted(doc))
	assert.False(t, HasAttr(FindByID(doc, StyleToggleID), "checked"))
}

func TestEnsureMountedReusesExistingToggle(t *testing.T) {
	sw := &fakeSwitch{enabled: true}
	a := New("", StyleToggle("Thumbnails", "", sw))
	doc := parse(t, strings.Replace(gridDocument,
		`<span class="grid-paging-summary">`,
		`<input type="checkbox" id="style-toggle"><span class="grid-paging-summary">`, 1))

	require.True(t, a.EnsureMounted(doc))
	assert.Equal(t, 1, CountByID(doc, StyleToggleID))
	assert.True(t, HasAttr(FindByID(doc, StyleToggleID), "checked"))
}

func TestDispatch(t *testing.T) {
	sw := &fakeSwitch{}
	a := New("",
		StyleToggle("Thumbnails", "", sw),
		DatasetToggle("Platformer", "", true, "/lists/demons"),
	)

	res, err := a.Dispatch(StyleToggleID, true)
	require.NoError(t, err)
	assert.Empty(t, res.Redirect)
	assert.True(t, sw.enabled)
	assert.Equal(t, 1, sw.calls)

	res, err = a.Dispatch(DatasetToggleID, true)
	require.NoError(t, err)
	assert.Empty(t, res.Redirect)

	res, err = a.Dispatch(DatasetToggleID, false)
	require.NoError(t, err)
	assert.Equal(t, "/lists/demons", res.Redirect)

	_, err = a.Dispatch("nope", true)
	assert.ErrorIs(t, err, ErrUnknownToggle)
}

func TestDatasetToggleOnAlternateList(t *testing.T) {
	a := New("", DatasetToggle("Platformer", "", false, "/lists/pemons"))
	doc := parse(t, gridDocument)

	require.True(t, a.EnsureMounted(doc))
	assert.False(t, HasAttr(FindByID(doc, DatasetToggleID), "checked"))

	res, err := a.Dispatch(DatasetToggleID, true)
	require.NoError(t, err)
	assert.Equal(t, "/lists/pemons", res.Redirect)
}
