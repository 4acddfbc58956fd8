package router

import "fmt"

// Document is the part of a page the router writes to.
type Document interface {
	SetTitle(title string)
}

// Navigation describes one completed navigation.
type Navigation struct {
	To             Location
	From           Location
	Route          *Route
	Params         Params
	Scroll         ScrollTarget
	RedirectedFrom string
}

type entry struct {
	loc    Location
	scroll Position
}

// Session is one browsing context over a route table: a document, its
// history stack and the listeners notified after each navigation. Sessions
// are single-threaded; navigations run one after another.
type Session struct {
	table   *Table
	doc     Document
	entries []entry
	index   int
	current *Navigation
	after   []func(*Navigation)
}

// NewSession starts an empty session writing to doc.
func NewSession(table *Table, doc Document) *Session {
	return &Session{table: table, doc: doc, index: -1}
}

// AfterEach registers fn to run after every successful navigation.
func (s *Session) AfterEach(fn func(*Navigation)) {
	s.after = append(s.after, fn)
}

// Current returns the last navigation, or nil before the first one.
func (s *Session) Current() *Navigation {
	return s.current
}

// Push navigates to target. scroll is the viewport position being left, kept
// for a later Back. On error the session is unchanged.
func (s *Session) Push(target string, scroll Position) (*Navigation, error) {
	nav, err := s.resolve(ParseLocation(target), nil)
	if err != nil {
		return nil, err
	}
	if s.index >= 0 {
		s.entries[s.index].scroll = scroll
		s.entries = s.entries[:s.index+1]
	}
	s.entries = append(s.entries, entry{loc: nav.To})
	s.index = len(s.entries) - 1
	s.commit(nav)
	return nav, nil
}

// Back moves one entry back in history.
func (s *Session) Back(scroll Position) (*Navigation, error) {
	return s.Go(-1, scroll)
}

// Forward moves one entry forward in history.
func (s *Session) Forward(scroll Position) (*Navigation, error) {
	return s.Go(1, scroll)
}

// Go moves delta entries through history, restoring the destination's saved
// scroll position.
func (s *Session) Go(delta int, scroll Position) (*Navigation, error) {
	i := s.index + delta
	if delta == 0 || i < 0 || i >= len(s.entries) {
		return nil, ErrNoHistory
	}
	saved := s.entries[i].scroll
	nav, err := s.resolve(s.entries[i].loc, &saved)
	if err != nil {
		return nil, err
	}
	s.entries[s.index].scroll = scroll
	s.index = i
	s.commit(nav)
	return nav, nil
}

func (s *Session) resolve(to Location, saved *Position) (*Navigation, error) {
	route, params, err := s.table.Resolve(to.Path)
	if err != nil {
		return nil, err
	}
	var redirectedFrom string
	if route.Redirect != "" {
		redirectedFrom = to.Path
		target := ParseLocation(route.Redirect)
		if target.Hash == "" {
			target.Hash = to.Hash
		}
		route, params, err = s.table.Resolve(target.Path)
		if err != nil {
			return nil, fmt.Errorf("router: redirect from %s: %w", redirectedFrom, err)
		}
		to = target
	}
	var from Location
	if s.current != nil {
		from = s.current.To
	}
	return &Navigation{
		To:             to,
		From:           from,
		Route:          route,
		Params:         params,
		Scroll:         ScrollBehavior(to, from, saved),
		RedirectedFrom: redirectedFrom,
	}, nil
}

func (s *Session) commit(nav *Navigation) {
	s.doc.SetTitle(nav.Route.TitleOr(FallbackTitle))
	s.current = nav
	for _, fn := range s.after {
		fn(nav)
	}
}
