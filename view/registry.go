package view

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mariokirby1703/pemon-information-table/cart"
	"github.com/mariokirby1703/pemon-information-table/columns"
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/mariokirby1703/pemon-information-table/web"
)

var ErrUnknownList = errors.New("unknown list")

type Options struct {
	Credit       string
	ThumbnailURL string
	PageSize     int
	ClassNames   map[string]string
}

type list struct {
	data     levels.ListData
	dataset  *levels.Dataset
	registry *columns.Registry
}

type key struct {
	session string
	list    string
}

// Registry hands out one View per session and list. Views nobody used for a
// while are dropped by Evict.
type Registry struct {
	mu       sync.Mutex
	renderer *web.Renderer
	opts     Options
	lists    []*list
	views    map[key]*View
	carts    map[string]*cart.Store
	seen     map[string]time.Time
}

func NewRegistry(renderer *web.Renderer, opts Options) *Registry {
	return &Registry{
		renderer: renderer,
		opts:     opts,
		views:    make(map[key]*View),
		carts:    make(map[string]*cart.Store),
		seen:     make(map[string]time.Time),
	}
}

// AddList makes a list available. Its column registry is built once here and
// cloned for every view.
func (r *Registry) AddList(data levels.ListData, dataset *levels.Dataset) error {
	reg, err := columns.NewRegistry(data, columns.WithClassNames(r.opts.ClassNames))
	if err != nil {
		return fmt.Errorf("columns of %s: %w", data.Name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lists {
		if l.data.Name == data.Name {
			return fmt.Errorf("list %s added twice", data.Name)
		}
	}
	r.lists = append(r.lists, &list{data: data, dataset: dataset, registry: reg})
	return nil
}

func (r *Registry) Lists() []levels.ListData {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]levels.ListData, len(r.lists))
	for i, l := range r.lists {
		out[i] = l.data
	}
	return out
}

// Dataset returns the shared dataset of a list.
func (r *Registry) Dataset(name string) (levels.ListData, *levels.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.find(name)
	if l == nil {
		return levels.ListData{}, nil, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	return l.data, l.dataset, nil
}

func (r *Registry) find(name string) *list {
	for _, l := range r.lists {
		if l.data.Name == name {
			return l
		}
	}
	return nil
}

// Get returns the view of session on the named list, creating it on first
// use. All views of a session share one cart.
func (r *Registry) Get(session, name string) (*View, error) {
	r.mu.Lock()
	l := r.find(name)
	if l == nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, name)
	}
	r.seen[session] = time.Now()
	k := key{session: session, list: name}
	if v, ok := r.views[k]; ok {
		r.mu.Unlock()
		v.touch()
		return v, nil
	}
	store := r.cartLocked(session)
	r.mu.Unlock()

	v := newView(l.data, l.dataset, l.registry.Clone(), store, r)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.views[k]; ok {
		return existing, nil
	}
	r.views[k] = v
	return v, nil
}

// Cart returns the cart of a session.
func (r *Registry) Cart(session string) *cart.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[session] = time.Now()
	return r.cartLocked(session)
}

func (r *Registry) cartLocked(session string) *cart.Store {
	store, ok := r.carts[session]
	if !ok {
		store = cart.NewStore()
		r.carts[session] = store
	}
	return store
}

// DropSession forgets every view and the cart of session.
func (r *Registry) DropSession(session string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.views {
		if k.session == session {
			delete(r.views, k)
		}
	}
	delete(r.carts, session)
	delete(r.seen, session)
}

// Evict drops views unused for longer than idle and returns how many went.
// A cart stays while its session has a view or was seen recently.
func (r *Registry) Evict(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for k, v := range r.views {
		if v.LastUsed().Before(cutoff) {
			delete(r.views, k)
			evicted++
		}
	}
	alive := make(map[string]bool, len(r.views))
	for k := range r.views {
		alive[k.session] = true
	}
	for session, at := range r.seen {
		if !alive[session] && at.Before(cutoff) {
			delete(r.carts, session)
			delete(r.seen, session)
		}
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sessions lists the sessions that currently hold a view.
func (r *Registry) Sessions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sessions []string
	for k := range r.views {
		if !slices.Contains(sessions, k.session) {
			sessions = append(sessions, k.session)
		}
	}
	slices.Sort(sessions)
	return sessions
}
