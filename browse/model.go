package browse

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/pagination"
	"github.com/mariokirby1703/pemon-information-table/view"
)

// Session is the view registry session the terminal browser uses.
const Session = "terminal"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8ab4f8"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	thumbStyle    = cellStyle.Background(lipgloss.Color("#2a2a33"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e91e63")).Bold(true)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	checkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50")).Bold(true)
	uncheckedText = "[ ]"
)

// classStyles mirrors the cell colors of the web stylesheet.
var classStyles = map[string]lipgloss.Style{
	"easy":      cellStyle.Background(lipgloss.Color("#4caf50")).Foreground(lipgloss.Color("#ffffff")),
	"medium":    cellStyle.Background(lipgloss.Color("#c0ca33")).Foreground(lipgloss.Color("#000000")),
	"hard":      cellStyle.Background(lipgloss.Color("#ff9800")).Foreground(lipgloss.Color("#000000")),
	"insane":    cellStyle.Background(lipgloss.Color("#e91e63")).Foreground(lipgloss.Color("#ffffff")),
	"extreme":   cellStyle.Background(lipgloss.Color("#7b1fa2")).Foreground(lipgloss.Color("#ffffff")),
	"rated":     cellStyle.Background(lipgloss.Color("#607d8b")).Foreground(lipgloss.Color("#ffffff")),
	"featured":  cellStyle.Background(lipgloss.Color("#fbc02d")).Foreground(lipgloss.Color("#000000")),
	"epic":      cellStyle.Background(lipgloss.Color("#ef6c00")).Foreground(lipgloss.Color("#ffffff")),
	"legendary": cellStyle.Background(lipgloss.Color("#6a1b9a")).Foreground(lipgloss.Color("#ffffff")),
	"mythic":    cellStyle.Background(lipgloss.Color("#00bcd4")).Foreground(lipgloss.Color("#ffffff")),
}

// Model is a bubbletea model paging through one list at a time. It drives
// the same view and style controller the web grid uses.
type Model struct {
	views *view.Registry
	view  *view.View
	query view.Query
	page  grid.Page
	err   error
	width int
}

func New(views *view.Registry, list string) (*Model, error) {
	v, err := views.Get(Session, list)
	if err != nil {
		return nil, err
	}
	m := &Model{views: views, view: v, query: view.Query{Page: 1}}
	m.refresh()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.query.Page > 1 {
				m.query.Page--
			}
		case "right", "l":
			if m.query.Page < m.page.Count {
				m.query.Page++
			}
		case "tab":
			m.query.Sort = nextSortable(m.page.Columns, m.query.Sort)
			m.query.Page = 1
		case "r":
			m.query.Desc = !m.query.Desc
		case "t":
			if _, err := m.view.Dispatch(pagination.StyleToggleID, !m.view.Controller().Enabled()); err != nil {
				m.err = err
			}
		case "d":
			m.switchList()
			return m, nil
		}
	}
	m.refresh()
	return m, nil
}

// switchList moves to the alternate list of the current one.
func (m *Model) switchList() {
	alternate := m.view.List().Alternate
	if alternate == "" {
		m.err = errors.New("list has no alternate")
		return
	}
	v, err := m.views.Get(Session, alternate)
	if err != nil {
		m.err = err
		return
	}
	m.view = v
	m.query = view.Query{Page: 1}
	m.refresh()
}

func (m *Model) refresh() {
	page, err := m.view.Page(m.query)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.page = page
	m.query.Page = page.Number
}

// nextSortable returns the sortable column after current. After the last
// one it returns "" which restores dataset order.
func nextSortable(cols []grid.Column, current string) string {
	found := current == ""
	for _, col := range cols {
		if !col.Sortable {
			continue
		}
		if found {
			return col.Field
		}
		if col.Field == current {
			found = true
		}
	}
	return ""
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.view.List().Title))
	b.WriteString("  ")
	b.WriteString(m.toggleIndicator())
	b.WriteString("\n\n")

	if m.page.TotalRows == 0 {
		b.WriteString(mutedStyle.Render("No rows to show"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTable())
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d to %d of %d  Page %d of %d", m.page.From, m.page.To, m.page.TotalRows, m.page.Number, m.page.Count)
		if m.page.Sort != "" {
			dir := "asc"
			if m.page.Desc {
				dir = "desc"
			}
			fmt.Fprintf(&b, "  sorted by %s %s", m.page.Sort, dir)
		}
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("←/→ page • tab sort • r reverse • t thumbnails • d switch list • q quit"))
	return b.String()
}

func (m *Model) toggleIndicator() string {
	if m.view.Controller().Enabled() {
		return checkedStyle.Render("[x]") + " Thumbnails"
	}
	return uncheckedText + " Thumbnails"
}

func (m *Model) renderTable() string {
	headers := make([]string, len(m.page.Columns))
	for i, col := range m.page.Columns {
		headers[i] = col.Header
		switch col.Sorted {
		case "asc":
			headers[i] += " ▲"
		case "desc":
			headers[i] += " ▼"
		}
	}
	rows := make([][]string, len(m.page.Rows))
	for i, row := range m.page.Rows {
		rows[i] = make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			rows[i][j] = cell.Text
		}
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(m.page.Rows) || col >= len(m.page.Rows[row].Cells) {
				return cellStyle
			}
			return styleOf(m.page.Rows[row], m.page.Rows[row].Cells[col])
		})
	if m.width > 0 {
		t = t.Width(m.width)
	}
	return t.Render()
}

// styleOf picks the style of the first class with a known color. Rows with a
// thumbnail get a plain shaded background.
func styleOf(row grid.Row, cell grid.Cell) lipgloss.Style {
	if !row.Style.IsZero() {
		return thumbStyle
	}
	for _, class := range cell.Classes {
		if s, ok := classStyles[class]; ok {
			return s
		}
	}
	return cellStyle
}
