package web

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"strconv"

	"github.com/google/safehtml/template"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/levels"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Static holds the stylesheet and script served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type Renderer struct {
	gridTemplate *template.Template
}

func NewRenderer() (*Renderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)
	gridTemplate, err := template.New("grid.html").ParseFS(trustedFS, "templates/grid.html")
	if err != nil {
		return nil, fmt.Errorf("parse grid template: %w", err)
	}
	return &Renderer{gridTemplate: gridTemplate}, nil
}

func (r *Renderer) Render(w io.Writer, data PageData) error {
	return r.gridTemplate.Execute(w, data)
}

type Link struct {
	Label  string
	Href   string
	Active bool
}

type Header struct {
	grid.Column
	Href string
}

type Pager struct {
	First string
	Prev  string
	Next  string
	Last  string
}

// PageData is everything the grid template shows.
type PageData struct {
	Title        string
	Lists        []Link
	Headers      []Header
	Page         grid.Page
	Pager        Pager
	Dir          string
	FilterAction string
}

// ListPath is the page path of a list.
func ListPath(name string) string {
	return "/lists/" + url.PathEscape(name)
}

// NewPageData builds the links of a grid page. Header links sort by their
// column, clicking the sorted column again flips the direction.
func NewPageData(list levels.ListData, page grid.Page, lists []levels.ListData) PageData {
	data := PageData{
		Title:        list.Title,
		Page:         page,
		Dir:          direction(page.Desc),
		FilterAction: ListPath(list.Name),
	}
	for _, l := range lists {
		data.Lists = append(data.Lists, Link{Label: l.Title, Href: ListPath(l.Name), Active: l.Name == list.Name})
	}

	for _, col := range page.Columns {
		desc := col.Sorted == "asc"
		data.Headers = append(data.Headers, Header{
			Column: col,
			Href:   pageURL(list.Name, 1, col.Field, desc, page.Filter),
		})
	}

	at := func(n int) string {
		return pageURL(list.Name, n, page.Sort, page.Desc, page.Filter)
	}
	data.Pager = Pager{
		First: at(1),
		Prev:  at(page.Number - 1),
		Next:  at(page.Number + 1),
		Last:  at(page.Count),
	}
	return data
}

func pageURL(list string, page int, sort string, desc bool, filter string) string {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if sort != "" {
		q.Set("sort", sort)
		q.Set("dir", direction(desc))
	}
	if filter != "" {
		q.Set("q", filter)
	}
	if len(q) == 0 {
		return ListPath(list)
	}
	return ListPath(list) + "?" + q.Encode()
}

func direction(desc bool) string {
	if desc {
		return "desc"
	}
	return "asc"
}
