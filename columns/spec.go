package columns

import (
	"slices"

	"github.com/mariokirby1703/pemon-information-table/levels"
)

const (
	GroupDifficulty = "difficulty"
	GroupRating     = "rating"
)

// Spec describes one grid column. ClassRules and Renderer are the only fields
// changed after construction.
type Spec struct {
	Field      string
	Header     string
	Width      int
	Comparator Comparator
	ClassGroup string
	ClassRules []ClassRule
	Formatter  func(levels.Level) string
	Renderer   func(levels.Level) Cell
}

func (s *Spec) Sortable() bool {
	return s.Comparator != nil
}

// Classes returns the classes of all matching rules in rule order.
func (s *Spec) Classes(row levels.Level) []string {
	var classes []string
	for _, rule := range s.ClassRules {
		if rule.Match(row) {
			classes = append(classes, rule.Class)
		}
	}
	return classes
}

func (s *Spec) Text(row levels.Level) string {
	if s.Formatter != nil {
		return s.Formatter(row)
	}
	return formatValue(row, s.Field)
}

func (s *Spec) Render(row levels.Level) Cell {
	if s.Renderer != nil {
		return s.Renderer(row)
	}
	return Cell{Kind: CellText, Text: s.Text(row)}
}

func (s *Spec) clone() *Spec {
	c := *s
	c.ClassRules = slices.Clone(s.ClassRules)
	return &c
}
