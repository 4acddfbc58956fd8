package router

import (
	"context"
	"errors"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

type fakeDoc struct {
	titles []string
}

func (d *fakeDoc) SetTitle(title string) {
	d.titles = append(d.titles, title)
}

func staticLoader() (Page, error) {
	return func(context.Context, *Navigation) (templ.Component, error) {
		return templ.NopComponent, nil
	}, nil
}

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(
		&Route{Path: "/", Name: "Home", Title: "Home", Load: staticLoader},
		&Route{Path: "/compare", Name: "CompareAlias", Redirect: "/comparison"},
		&Route{Path: "/comparison", Name: "Comparison", Title: "Detailed Comparison", Load: staticLoader},
		&Route{Path: "/comparison/:topic", Name: "Topic", Title: "Topic", Load: staticLoader},
		&Route{Path: "/untitled", Name: "Untitled", Load: staticLoader},
	)
	require.NoError(t, err)
	return table
}

func TestResolveExactAndPattern(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	r, params, err := table.Resolve("/comparison/")
	require.NoError(t, err)
	require.Equal(t, "Comparison", r.Name)
	require.Empty(t, params)

	r, params, err = table.Resolve("/comparison/forms")
	require.NoError(t, err)
	require.Equal(t, "Topic", r.Name)
	require.Equal(t, "forms", params.Get("topic"))
	require.True(t, r.Dynamic())
}

func TestResolveUnknownPath(t *testing.T) {
	t.Parallel()
	table := testTable(t)

	_, _, err := table.Resolve("/nope")
	require.ErrorIs(t, err, ErrNoRoute)

	_, _, err = table.Resolve("/comparison/a/b")
	require.ErrorIs(t, err, ErrNoRoute)
}

func TestNewTableRejectsInvalidRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		routes []*Route
	}{
		{"relative path", []*Route{{Path: "x", Name: "X", Load: staticLoader}}},
		{"missing name", []*Route{{Path: "/x", Load: staticLoader}}},
		{"duplicate path", []*Route{
			{Path: "/x", Name: "A", Load: staticLoader},
			{Path: "/x/", Name: "B", Load: staticLoader},
		}},
		{"no loader or redirect", []*Route{{Path: "/x", Name: "X"}}},
		{"dangling redirect", []*Route{{Path: "/x", Name: "X", Redirect: "/y"}}},
		{"redirect chain", []*Route{
			{Path: "/a", Name: "A", Redirect: "/b"},
			{Path: "/b", Name: "B", Redirect: "/c"},
			{Path: "/c", Name: "C", Load: staticLoader},
		}},
	}
	for _, tt := range tests {
		_, err := NewTable(tt.routes...)
		require.Error(t, err, tt.name)
	}
}

func TestPushSetsTitleOncePerNavigation(t *testing.T) {
	t.Parallel()
	doc := &fakeDoc{}
	s := NewSession(testTable(t), doc)

	_, err := s.Push("/comparison", Position{})
	require.NoError(t, err)
	_, err = s.Push("/untitled", Position{})
	require.NoError(t, err)

	require.Equal(t, []string{"Detailed Comparison", FallbackTitle}, doc.titles)
}

func TestPushUnknownLeavesSessionUntouched(t *testing.T) {
	t.Parallel()
	doc := &fakeDoc{}
	s := NewSession(testTable(t), doc)

	_, err := s.Push("/", Position{})
	require.NoError(t, err)
	_, err = s.Push("/missing", Position{Top: 40})
	require.ErrorIs(t, err, ErrNoRoute)

	require.Equal(t, "/", s.Current().To.Path)
	require.Len(t, doc.titles, 1)
	_, err = s.Back(Position{})
	require.ErrorIs(t, err, ErrNoHistory)
}

func TestPushFollowsRedirect(t *testing.T) {
	t.Parallel()
	doc := &fakeDoc{}
	s := NewSession(testTable(t), doc)

	nav, err := s.Push("/compare#lists", Position{})
	require.NoError(t, err)
	require.Equal(t, "Comparison", nav.Route.Name)
	require.Equal(t, "/compare", nav.RedirectedFrom)
	require.Equal(t, Location{Path: "/comparison", Hash: "lists"}, nav.To)
	require.Equal(t, []string{"Detailed Comparison"}, doc.titles)
}

func TestHistoryRestoresSavedScroll(t *testing.T) {
	t.Parallel()
	s := NewSession(testTable(t), &fakeDoc{})

	nav, err := s.Push("/", Position{})
	require.NoError(t, err)
	require.Equal(t, ScrollTarget{}, nav.Scroll)

	_, err = s.Push("/comparison", Position{Top: 320})
	require.NoError(t, err)

	nav, err = s.Back(Position{Top: 90})
	require.NoError(t, err)
	require.Equal(t, "/", nav.To.Path)
	require.Equal(t, Position{Top: 320}, nav.Scroll.Position)

	nav, err = s.Forward(Position{})
	require.NoError(t, err)
	require.Equal(t, "/comparison", nav.To.Path)
	require.Equal(t, Position{Top: 90}, nav.Scroll.Position)
	require.Equal(t, "/", nav.From.Path)
}

func TestPushTruncatesForwardHistory(t *testing.T) {
	t.Parallel()
	s := NewSession(testTable(t), &fakeDoc{})

	for _, p := range []string{"/", "/comparison", "/untitled"} {
		_, err := s.Push(p, Position{})
		require.NoError(t, err)
	}
	_, err := s.Go(-2, Position{})
	require.NoError(t, err)
	_, err = s.Push("/comparison/forms", Position{})
	require.NoError(t, err)

	_, err = s.Forward(Position{})
	require.ErrorIs(t, err, ErrNoHistory)
}

func TestAfterEachSeesEveryNavigation(t *testing.T) {
	t.Parallel()
	s := NewSession(testTable(t), &fakeDoc{})

	var seen []string
	s.AfterEach(func(nav *Navigation) {
		seen = append(seen, nav.To.Path)
	})
	_, _ = s.Push("/", Position{})
	_, _ = s.Push("/missing", Position{})
	_, _ = s.Push("/comparison", Position{})
	_, _ = s.Back(Position{})

	require.Equal(t, []string{"/", "/comparison", "/"}, seen)
}

func TestScrollBehavior(t *testing.T) {
	t.Parallel()
	saved := &Position{Left: 4, Top: 200}

	tests := []struct {
		name  string
		to    Location
		saved *Position
		want  ScrollTarget
	}{
		{"hash wins over saved", Location{Path: "/learn", Hash: "props"}, saved, ScrollTarget{Selector: "#props", Smooth: true}},
		{"saved position", Location{Path: "/learn"}, saved, ScrollTarget{Position: *saved}},
		{"top", Location{Path: "/learn"}, nil, ScrollTarget{}},
	}
	for _, tt := range tests {
		got := ScrollBehavior(tt.to, Location{Path: "/"}, tt.saved)
		require.Equal(t, tt.want, got, tt.name)
	}
}

func TestRoutePageLoadsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	failing := errors.New("boom")
	r := &Route{Path: "/x", Name: "X", Load: func() (Page, error) {
		calls++
		return nil, failing
	}}
	_, err := r.Page()
	require.ErrorIs(t, err, failing)
	_, err = r.Page()
	require.ErrorIs(t, err, failing)
	require.Equal(t, 1, calls)
}

func TestParseLocation(t *testing.T) {
	t.Parallel()

	require.Equal(t, Location{Path: "/learn", Hash: "props"}, ParseLocation("/learn/?tab=1#props"))
	require.Equal(t, Location{Path: "/"}, ParseLocation(""))
	require.Equal(t, "/learn#props", ParseLocation("learn#props").String())
}
