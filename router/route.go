// Package router maps request paths to page routes and drives navigation
// within a browsing session: title updates, history and scroll restoration.
package router

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// FallbackTitle is the document title for routes that do not declare one.
const FallbackTitle = "Vue vs React"

var (
	// ErrNoRoute is returned when no route matches a path. There is no
	// catch-all route.
	ErrNoRoute = errors.New("router: no route")
	// ErrNoHistory is returned when a history traversal has nowhere to go.
	ErrNoHistory = errors.New("router: no history entry")
)

// Params holds the values captured by ":name" path segments.
type Params map[string]string

// Get returns the named parameter, or "".
func (p Params) Get(name string) string {
	return p[name]
}

// Page builds the component for a resolved navigation.
type Page func(ctx context.Context, nav *Navigation) (templ.Component, error)

// Loader resolves a route's page on first use.
type Loader func() (Page, error)

// Route is one entry of the route table. Routes are immutable once added to
// a Table; the page is resolved lazily and at most once.
type Route struct {
	Path     string
	Name     string
	Title    string
	Redirect string
	Load     Loader

	segments []string
	once     sync.Once
	page     Page
	err      error
}

// TitleOr returns the route title or fallback when it has none.
func (r *Route) TitleOr(fallback string) string {
	if r.Title == "" {
		return fallback
	}
	return r.Title
}

// Page resolves the route's page, calling its loader only once.
func (r *Route) Page() (Page, error) {
	if r.Load == nil {
		return nil, fmt.Errorf("router: route %q has no page", r.Name)
	}
	r.once.Do(func() {
		r.page, r.err = r.Load()
		if r.err != nil {
			r.err = fmt.Errorf("router: load %q: %w", r.Name, r.err)
		}
	})
	return r.page, r.err
}

// Dynamic reports whether the route path has parameters.
func (r *Route) Dynamic() bool {
	for _, s := range r.segments {
		if strings.HasPrefix(s, ":") {
			return true
		}
	}
	return false
}

func (r *Route) match(p string) (Params, bool) {
	segs := splitPath(p)
	if len(segs) != len(r.segments) {
		return nil, false
	}
	var params Params
	for i, want := range r.segments {
		got := segs[i]
		if name, ok := strings.CutPrefix(want, ":"); ok {
			if got == "" {
				return nil, false
			}
			if params == nil {
				params = Params{}
			}
			params[name] = got
			continue
		}
		if want != got {
			return nil, false
		}
	}
	return params, true
}

// Table is the ordered, immutable route table. The first matching route wins.
type Table struct {
	routes []*Route
}

// NewTable validates routes and builds a table.
func NewTable(routes ...*Route) (*Table, error) {
	t := &Table{}
	names := make(map[string]bool, len(routes))
	paths := make(map[string]bool, len(routes))
	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("router: route %q: path %q must start with /", r.Name, r.Path)
		}
		if r.Name == "" {
			return nil, fmt.Errorf("router: route %q has no name", r.Path)
		}
		if names[r.Name] {
			return nil, fmt.Errorf("router: duplicate route name %q", r.Name)
		}
		r.Path = Normalize(r.Path)
		if paths[r.Path] {
			return nil, fmt.Errorf("router: duplicate route path %q", r.Path)
		}
		if (r.Load == nil) == (r.Redirect == "") {
			return nil, fmt.Errorf("router: route %q needs exactly one of a loader or a redirect", r.Name)
		}
		r.segments = splitPath(r.Path)
		paths[r.Path] = true
		names[r.Name] = true
		t.routes = append(t.routes, r)
	}
	for _, r := range t.routes {
		if r.Redirect == "" {
			continue
		}
		target, _, err := t.Resolve(r.Redirect)
		if err != nil {
			return nil, fmt.Errorf("router: route %q redirects to %q: %w", r.Name, r.Redirect, err)
		}
		if target.Redirect != "" {
			return nil, fmt.Errorf("router: route %q redirects to another redirect", r.Name)
		}
	}
	return t, nil
}

// Resolve returns the route matching p and its captured parameters.
func (t *Table) Resolve(p string) (*Route, Params, error) {
	p = Normalize(ParseLocation(p).Path)
	for _, r := range t.routes {
		if params, ok := r.match(p); ok {
			return r, params, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrNoRoute, p)
}

// Routes returns the routes in table order.
func (t *Table) Routes() []*Route {
	out := make([]*Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Normalize cleans p and strips any trailing slash except on the root.
func Normalize(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
