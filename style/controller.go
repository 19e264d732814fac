package style

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/safehtml"
	"github.com/mariokirby1703/pemon-information-table/columns"
	"github.com/mariokirby1703/pemon-information-table/grid"
	"github.com/mariokirby1703/pemon-information-table/levels"
)

// DefaultThumbnailURL is the thumbnail pattern used when none is configured.
// {id} is replaced with the level id.
const DefaultThumbnailURL = "https://levelthumbs.prevter.me/thumbnail/{id}/small"

// Controller switches between class rule cell styling and thumbnail row
// backgrounds.
type Controller struct {
	mu        sync.Mutex
	enabled   bool
	grid      grid.API
	registry  *columns.Registry
	thumbnail string
}

func NewController(g grid.API, registry *columns.Registry, thumbnailURL string) *Controller {
	if thumbnailURL == "" {
		thumbnailURL = DefaultThumbnailURL
	}
	return &Controller{grid: g, registry: registry, thumbnail: thumbnailURL}
}

func (c *Controller) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetEnabled switches the style mode and reports whether anything changed.
// Enabling clears the difficulty and rating class rules, disabling restores
// them; either way the grid gets the new columns and a full redraw.
func (c *Controller) SetEnabled(flag bool) bool {
	c.mu.Lock()
	if flag == c.enabled {
		c.mu.Unlock()
		return false
	}
	c.enabled = flag
	for _, spec := range c.registry.Styled() {
		if flag {
			spec.ClassRules = nil
		} else {
			spec.ClassRules = c.registry.DefaultClassRules(spec.Field)
		}
	}
	c.mu.Unlock()

	c.grid.SetColumnDefs(c.registry.Specs())
	c.grid.RedrawRows()
	return true
}

func (c *Controller) Toggle() bool {
	return c.SetEnabled(!c.Enabled())
}

// RowStyle decorates rows with their thumbnail while the mode is enabled.
// Rows without an id stay plain.
func (c *Controller) RowStyle(row levels.Level) grid.RowStyle {
	if !c.Enabled() || row.ID == 0 {
		return grid.RowStyle{}
	}
	url := c.ThumbnailURL(row.ID)
	return grid.RowStyle{
		Thumbnail: url,
		Style: safehtml.StyleFromProperties(safehtml.StyleProperties{
			BackgroundImageURLs: []string{url},
			BackgroundSize:      "cover",
			BackgroundPosition:  "center",
			BackgroundRepeat:    "no-repeat",
		}),
	}
}

func (c *Controller) ThumbnailURL(id int) string {
	return strings.ReplaceAll(c.thumbnail, "{id}", strconv.Itoa(id))
}
