package grid

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/safehtml"
	"github.com/mariokirby1703/pemon-information-table/columns"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"modernc.org/mathutil"
)

const DefaultPageSize = 50

var ErrUnknownColumn = errors.New("unknown or unsortable column")

// API is the part of the grid other components drive: column replacement,
// redraws and the ready notification.
type API interface {
	SetColumnDefs(specs []*columns.Spec)
	RedrawRows()
	RefreshCells(fields ...string)
	OnReady(fn func())
}

// RowStyle decorates a whole row. The zero value means no decoration.
type RowStyle struct {
	Thumbnail string
	Style     safehtml.Style
}

func (s RowStyle) IsZero() bool {
	return s.Thumbnail == ""
}

type Cell struct {
	columns.Cell
	Field   string
	Classes []string
}

type Row struct {
	Level levels.Level
	Cells []Cell
	Style RowStyle
}

type Column struct {
	Field    string
	Header   string
	Width    int
	Sortable bool
	Sorted   string
}

type Page struct {
	Columns   []Column
	Rows      []Row
	Number    int
	Count     int
	Size      int
	TotalRows int
	From      int
	To        int
	Sort      string
	Desc      bool
	Filter    string
}

// Grid sorts, filters and paginates rows using column specs. Rendered rows
// are cached until the data, the columns or the view parameters change.
type Grid struct {
	mu          sync.Mutex
	rows        []levels.Level
	specs       []*columns.Spec
	sortField   string
	sortDesc    bool
	quickFilter string
	pageSize    int
	rowStyle    func(levels.Level) RowStyle

	ready    bool
	readyFns []func()

	cache       []Row
	staleFields map[string]bool
	staleStyles bool
}

var _ API = (*Grid)(nil)

func New(specs []*columns.Spec) *Grid {
	return &Grid{
		specs:       specs,
		pageSize:    DefaultPageSize,
		staleFields: make(map[string]bool),
	}
}

// SetRowData replaces all rows. The first call signals ready.
func (g *Grid) SetRowData(rows []levels.Level) {
	g.mu.Lock()
	g.rows = rows
	g.cache = nil
	var fire []func()
	if !g.ready {
		g.ready = true
		fire = g.readyFns
		g.readyFns = nil
	}
	g.mu.Unlock()

	for _, fn := range fire {
		fn()
	}
}

// OnReady registers fn to run once the grid received its first rows. If that
// already happened fn runs immediately.
func (g *Grid) OnReady(fn func()) {
	g.mu.Lock()
	if !g.ready {
		g.readyFns = append(g.readyFns, fn)
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()
	fn()
}

func (g *Grid) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

func (g *Grid) SetColumnDefs(specs []*columns.Spec) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.specs = specs
	g.cache = nil
}

// RedrawRows recomputes row styles and every cell of the cached rows.
func (g *Grid) RedrawRows() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.staleStyles = true
	for _, spec := range g.specs {
		g.staleFields[spec.Field] = true
	}
}

// RefreshCells recomputes the cells of the given fields only.
func (g *Grid) RefreshCells(fields ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, field := range fields {
		g.staleFields[field] = true
	}
}

func (g *Grid) SetRowStyle(fn func(levels.Level) RowStyle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rowStyle = fn
	g.staleStyles = true
}

// SetSort orders rows by field. An empty field restores dataset order.
func (g *Grid) SetSort(field string, desc bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if field != "" {
		spec := g.spec(field)
		if spec == nil || !spec.Sortable() {
			return fmt.Errorf("%w: %s", ErrUnknownColumn, field)
		}
	}
	if field == g.sortField && desc == g.sortDesc {
		return nil
	}
	g.sortField, g.sortDesc = field, desc
	g.cache = nil
	return nil
}

// SetQuickFilter keeps only rows where some column's display text contains
// text, ignoring case.
func (g *Grid) SetQuickFilter(text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	text = strings.TrimSpace(text)
	if text == g.quickFilter {
		return
	}
	g.quickFilter = text
	g.cache = nil
}

func (g *Grid) SetPageSize(size int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pageSize = mathutil.Max(size, 1)
}

// Page returns the 1-based page n. Out of range page numbers are clamped.
func (g *Grid) Page(n int) Page {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows := g.renderedRows()
	count := mathutil.Max((len(rows)+g.pageSize-1)/g.pageSize, 1)
	n = mathutil.Min(mathutil.Max(n, 1), count)
	from := (n - 1) * g.pageSize
	to := mathutil.Min(from+g.pageSize, len(rows))

	page := Page{
		Columns:   g.columns(),
		Rows:      slices.Clone(rows[from:to]),
		Number:    n,
		Count:     count,
		Size:      g.pageSize,
		TotalRows: len(rows),
		Sort:      g.sortField,
		Desc:      g.sortDesc,
		Filter:    g.quickFilter,
	}
	if to > from {
		page.From, page.To = from+1, to
	}
	return page
}

func (g *Grid) columns() []Column {
	cols := make([]Column, len(g.specs))
	for i, spec := range g.specs {
		cols[i] = Column{Field: spec.Field, Header: spec.Header, Width: spec.Width, Sortable: spec.Sortable()}
		if spec.Field == g.sortField {
			cols[i].Sorted = "asc"
			if g.sortDesc {
				cols[i].Sorted = "desc"
			}
		}
	}
	return cols
}

func (g *Grid) spec(field string) *columns.Spec {
	for _, spec := range g.specs {
		if spec.Field == field {
			return spec
		}
	}
	return nil
}

func (g *Grid) renderedRows() []Row {
	if g.cache == nil {
		g.cache = g.build()
		g.staleStyles = false
		clear(g.staleFields)
		return g.cache
	}
	if g.staleStyles {
		for i := range g.cache {
			g.cache[i].Style = g.styleOf(g.cache[i].Level)
		}
		g.staleStyles = false
	}
	if len(g.staleFields) > 0 {
		for i := range g.cache {
			cells := slices.Clone(g.cache[i].Cells)
			for j, cell := range cells {
				if g.staleFields[cell.Field] {
					cells[j] = renderCell(g.specs[j], g.cache[i].Level)
				}
			}
			g.cache[i].Cells = cells
		}
		clear(g.staleFields)
	}
	return g.cache
}

func (g *Grid) build() []Row {
	filtered := make([]levels.Level, 0, len(g.rows))
	needle := strings.ToLower(g.quickFilter)
	for _, row := range g.rows {
		if needle == "" || g.matches(row, needle) {
			filtered = append(filtered, row)
		}
	}

	if spec := g.spec(g.sortField); spec != nil && spec.Comparator != nil {
		compare, desc := spec.Comparator, g.sortDesc
		sort.SliceStable(filtered, func(i, j int) bool {
			c := compare(filtered[i], filtered[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	out := make([]Row, len(filtered))
	for i, row := range filtered {
		cells := make([]Cell, len(g.specs))
		for j, spec := range g.specs {
			cells[j] = renderCell(spec, row)
		}
		out[i] = Row{Level: row, Cells: cells, Style: g.styleOf(row)}
	}
	return out
}

func (g *Grid) matches(row levels.Level, needle string) bool {
	for _, spec := range g.specs {
		if strings.Contains(strings.ToLower(spec.Text(row)), needle) {
			return true
		}
	}
	return false
}

func (g *Grid) styleOf(row levels.Level) RowStyle {
	if g.rowStyle == nil {
		return RowStyle{}
	}
	return g.rowStyle(row)
}

func renderCell(spec *columns.Spec, row levels.Level) Cell {
	return Cell{Cell: spec.Render(row), Field: spec.Field, Classes: spec.Classes(row)}
}
