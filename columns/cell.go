package columns

import (
	"github.com/mariokirby1703/pemon-information-table/levels"
)

type CellKind int

const (
	CellText CellKind = iota
	CellLink
	CellCheckbox
)

// Cell is the rendered content of one grid cell. Href is only set for links,
// Checked only means something for checkboxes.
type Cell struct {
	Kind    CellKind
	Text    string
	Href    string
	Checked bool
}

// renderShowcaseLink links the level name to its showcase video when there is
// one.
func renderShowcaseLink(row levels.Level) Cell {
	if row.Showcase == "" {
		return Cell{Kind: CellText, Text: row.Level}
	}
	return Cell{Kind: CellLink, Text: row.Level, Href: row.Showcase}
}

func renderCheckbox(field func(levels.Level) bool) func(levels.Level) Cell {
	return func(row levels.Level) Cell {
		checked := field(row)
		text := "no"
		if checked {
			text = "yes"
		}
		return Cell{Kind: CellCheckbox, Text: text, Checked: checked}
	}
}

func (c Cell) IsLink() bool {
	return c.Kind == CellLink
}

func (c Cell) IsCheckbox() bool {
	return c.Kind == CellCheckbox
}
