package pagination

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	PanelID  = "grid-pagination-panel"
	CreditID = "grid-credit"
)

var ErrUnknownToggle = errors.New("unknown toggle")

// Result tells the caller what to do after a toggle change. An empty Redirect
// means stay on the current view.
type Result struct {
	Redirect string `json:"redirect,omitempty"`
}

// Toggle is a checkbox injected into the pagination bar. Checked reads the
// bound state on every mount, OnChange receives change events.
type Toggle struct {
	ID       string
	Label    string
	Endpoint string
	Checked  func() bool
	OnChange func(checked bool) (Result, error)
}

// Augmenter injects a credit label and toggle switches into the pagination
// bar of a rendered grid.
type Augmenter struct {
	credit  string
	toggles []Toggle
}

func New(credit string, toggles ...Toggle) *Augmenter {
	return &Augmenter{credit: credit, toggles: toggles}
}

// EnsureMounted adds whatever is missing to the pagination panel of doc and
// syncs every toggle's checked attribute with its state. Elements that
// already exist are reused, so repeated calls never duplicate anything. It
// returns false without touching doc when there is no pagination panel.
func (a *Augmenter) EnsureMounted(doc *html.Node) bool {
	panel := FindByID(doc, PanelID)
	if panel == nil {
		return false
	}

	if a.credit != "" && FindByID(doc, CreditID) == nil {
		credit := element(atom.Span, CreditID, "grid-credit")
		credit.AppendChild(&html.Node{Type: html.TextNode, Data: a.credit})
		panel.InsertBefore(credit, panel.FirstChild)
	}

	for _, toggle := range a.toggles {
		input := FindByID(doc, toggle.ID)
		if input == nil {
			input = a.mountToggle(panel, toggle)
		}
		checked := toggle.Checked != nil && toggle.Checked()
		if checked {
			setAttr(input, "checked", "")
		} else {
			removeAttr(input, "checked")
		}
	}
	return true
}

func (a *Augmenter) mountToggle(panel *html.Node, toggle Toggle) *html.Node {
	label := element(atom.Label, "", "grid-switch")
	setAttr(label, "for", toggle.ID)

	input := element(atom.Input, toggle.ID, "grid-toggle")
	setAttr(input, "type", "checkbox")
	setAttr(input, "data-toggle", toggle.ID)
	if toggle.Endpoint != "" {
		setAttr(input, "data-endpoint", toggle.Endpoint)
	}
	label.AppendChild(input)

	text := element(atom.Span, "", "grid-switch-label")
	text.AppendChild(&html.Node{Type: html.TextNode, Data: toggle.Label})
	label.AppendChild(text)

	panel.AppendChild(label)
	return input
}

// Dispatch delivers a change event of the toggle with the given id.
func (a *Augmenter) Dispatch(id string, checked bool) (Result, error) {
	for _, toggle := range a.toggles {
		if toggle.ID != id {
			continue
		}
		if toggle.OnChange == nil {
			return Result{}, nil
		}
		return toggle.OnChange(checked)
	}
	return Result{}, fmt.Errorf("%w: %s", ErrUnknownToggle, id)
}

func (a *Augmenter) Toggles() []Toggle {
	return a.toggles
}
