package view

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mariokirby1703/pemon-information-table/cart"
	"github.com/mariokirby1703/pemon-information-table/columns"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/mariokirby1703/pemon-information-table/pagination"
	"github.com/mariokirby1703/pemon-information-table/style"
	"github.com/mariokirby1703/pemon-information-table/web"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Query selects what part of the grid to show.
type Query struct {
	Page   int
	Sort   string
	Desc   bool
	Filter string
}

// View is the grid of one list as seen by one session. It owns its column
// registry so style toggles never leak into other sessions.
type View struct {
	mu         sync.Mutex
	list       levels.ListData
	dataset    *levels.Dataset
	version    uint64
	registry   *columns.Registry
	grid       *grid.Grid
	controller *style.Controller
	augmenter  *pagination.Augmenter
	renderer   *web.Renderer
	lists      []levels.ListData
	cart       *cart.Store
	ready      atomic.Bool
	lastUsed   atomic.Int64
}

func newView(list levels.ListData, dataset *levels.Dataset, registry *columns.Registry, store *cart.Store, r *Registry) *View {
	v := &View{
		list:     list,
		dataset:  dataset,
		registry: registry,
		grid:     grid.New(registry.Specs()),
		renderer: r.renderer,
		lists:    r.Lists(),
		cart:     store,
	}
	v.controller = style.NewController(v.grid, registry, r.opts.ThumbnailURL)
	v.grid.SetRowStyle(v.controller.RowStyle)
	if r.opts.PageSize > 0 {
		v.grid.SetPageSize(r.opts.PageSize)
	}
	v.grid.OnReady(func() { v.ready.Store(true) })

	toggles := []pagination.Toggle{
		pagination.StyleToggle("Thumbnails", ToggleEndpoint(list.Name, pagination.StyleToggleID), v.controller),
	}
	if toggle, ok := datasetToggle(list, v.lists); ok {
		toggles = append(toggles, toggle)
	}
	v.augmenter = pagination.New(r.opts.Credit, toggles...)
	v.touch()
	return v
}

// datasetToggle switches between the first configured list and its
// alternate. It is checked while the first list is shown.
func datasetToggle(list levels.ListData, lists []levels.ListData) (pagination.Toggle, bool) {
	if len(lists) < 2 {
		return pagination.Toggle{}, false
	}
	primary := lists[0]
	current := list.Name == primary.Name
	target := primary.Name
	if current {
		target = primary.Alternate
	}
	if target == "" || !hasList(lists, target) {
		return pagination.Toggle{}, false
	}
	label := cases.Title(language.English).String(primary.Name)
	endpoint := ToggleEndpoint(list.Name, pagination.DatasetToggleID)
	return pagination.DatasetToggle(label, endpoint, current, web.ListPath(target)), true
}

func hasList(lists []levels.ListData, name string) bool {
	for _, l := range lists {
		if l.Name == name {
			return true
		}
	}
	return false
}

func ToggleEndpoint(list, toggle string) string {
	return "/api/lists/" + list + "/toggles/" + toggle
}

func (v *View) List() levels.ListData {
	return v.list
}

func (v *View) Controller() *style.Controller {
	return v.controller
}

func (v *View) Cart() *cart.Store {
	return v.cart
}

func (v *View) LastUsed() time.Time {
	return time.Unix(0, v.lastUsed.Load())
}

func (v *View) touch() {
	v.lastUsed.Store(time.Now().UnixNano())
}

// sync hands the grid the dataset rows when they changed since the last
// call. A dataset that never loaded leaves the grid without rows and not
// ready.
func (v *View) sync() {
	rows, version := v.dataset.Snapshot()
	if version == 0 || version == v.version {
		return
	}
	v.version = version
	v.grid.SetRowData(rows)
}

// Page applies q and returns the resulting grid page.
func (v *View) Page(q Query) (grid.Page, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page(q)
}

func (v *View) page(q Query) (grid.Page, error) {
	v.touch()
	v.sync()

	if err := v.grid.SetSort(q.Sort, q.Desc); err != nil {
		return grid.Page{}, err
	}
	v.grid.SetQuickFilter(q.Filter)
	return v.grid.Page(q.Page), nil
}

// Render writes the HTML grid page for q. Once the grid has rows the
// pagination bar gets its credit and toggles.
func (v *View) Render(w io.Writer, q Query) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	page, err := v.page(q)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := v.renderer.Render(&buf, web.NewPageData(v.list, page, v.lists)); err != nil {
		return fmt.Errorf("render grid: %w", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		return fmt.Errorf("parse grid: %w", err)
	}
	if v.ready.Load() {
		v.augmenter.EnsureMounted(doc)
	}
	return html.Render(w, doc)
}

// Dispatch forwards a toggle change from the pagination bar. It holds the
// view lock, so a render never sees the column rules half switched or a
// toggle state that differs from the controller.
func (v *View) Dispatch(toggle string, checked bool) (pagination.Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.touch()
	return v.augmenter.Dispatch(toggle, checked)
}
