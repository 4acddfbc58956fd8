package vuevreact

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/content"
	"github.com/jezweb/vuevreact/markdown"
	"github.com/jezweb/vuevreact/quiz"
	"github.com/jezweb/vuevreact/router"
	"github.com/jezweb/vuevreact/views"
)

// pageRequest carries per-visitor data a page needs beyond its route.
type pageRequest struct {
	csrf       string
	resultID   string
	incomplete bool
}

type pageRequestKey struct{}

func withPageRequest(ctx context.Context, r pageRequest) context.Context {
	return context.WithValue(ctx, pageRequestKey{}, r)
}

func pageRequestFrom(ctx context.Context) pageRequest {
	r, _ := ctx.Value(pageRequestKey{}).(pageRequest)
	return r
}

func static(p router.Page) router.Loader {
	return func() (router.Page, error) { return p, nil }
}

// PageRoutes builds the site's route table. Pages load lazily, so the table
// can be listed before the app is initialised.
func (a *App) PageRoutes() (*router.Table, error) {
	return router.NewTable(
		&router.Route{Path: "/", Name: "home", Title: "Vue vs React - Interactive Comparison", Load: static(a.homePage)},
		&router.Route{Path: "/compare", Name: "compare", Redirect: "/comparison"},
		&router.Route{Path: "/comparison", Name: "comparison", Title: "Detailed Comparison", Load: static(a.comparisonPage)},
		&router.Route{Path: "/comparison/:topic", Name: "comparison-topic", Title: "Detailed Comparison", Load: static(a.topicPage)},
		&router.Route{Path: "/learn", Name: "learn", Title: "Learn Vue & React - Interactive Guide", Load: static(a.learnPage)},
		&router.Route{Path: "/learn/:lesson", Name: "lesson", Title: "Learn Vue & React - Interactive Guide", Load: a.loadLessons},
		&router.Route{Path: "/playground", Name: "playground", Title: "Code Playground - Vue vs React", Load: static(a.playgroundPage)},
		&router.Route{Path: "/decision-helper", Name: "decision-helper", Title: "Framework Decision Helper", Load: static(a.decisionPage)},
		&router.Route{Path: "/performance", Name: "performance", Title: "Performance Comparison - Vue vs React", Load: static(a.performancePage)},
		&router.Route{Path: "/community", Name: "community", Title: "Community Resources - Vue vs React", Load: static(a.communityPage)},
		&router.Route{Path: "/migration", Name: "migration", Title: "Migration Guide - Vue vs React", Load: a.loadGuide("migration")},
		&router.Route{Path: "/examples", Name: "examples", Title: "Real-World Examples - Vue vs React", Load: a.loadGuide("examples")},
		&router.Route{Path: "/case-studies", Name: "case-studies", Title: "Industry Case Studies - Vue vs React", Load: a.loadGuide("case-studies")},
	)
}

func (a *App) homePage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	return views.Home(views.HomeData{
		React:     a.Catalog.Metrics[content.React],
		Vue:       a.Catalog.Metrics[content.Vue],
		Animation: a.Catalog.Animation,
	}), nil
}

func (a *App) comparisonPage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	return views.Comparison(a.Catalog.Topics, a.Catalog.Metrics[content.React], a.Catalog.Metrics[content.Vue]), nil
}

func (a *App) topicPage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	topic, err := a.Catalog.Topic(nav.Params.Get("topic"))
	if err != nil {
		return nil, err
	}
	return views.Topic(topic, a.Catalog.Topics), nil
}

func (a *App) learnPage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	return views.Learn(a.Catalog.Lessons, a.Catalog.Learning), nil
}

// loadLessons renders every lesson body once, on the first lesson request.
func (a *App) loadLessons() (router.Page, error) {
	bodies := make(map[string]string, len(a.Catalog.Lessons))
	for _, l := range a.Catalog.Lessons {
		html, err := markdown.Render(l.Body)
		if err != nil {
			return nil, fmt.Errorf("render lesson %s: %w", l.Slug, err)
		}
		bodies[l.Slug] = html
	}
	return func(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
		doc, err := a.Catalog.Lesson(nav.Params.Get("lesson"))
		if err != nil {
			return nil, err
		}
		return views.Lesson(doc, markdown.HTML(bodies[doc.Slug]), a.Catalog.Learning), nil
	}, nil
}

func (a *App) loadGuide(slug string) router.Loader {
	return func() (router.Page, error) {
		doc, err := a.Catalog.Guide(slug)
		if err != nil {
			return nil, err
		}
		html, err := markdown.Render(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("render guide %s: %w", slug, err)
		}
		page := views.Guide(doc, markdown.HTML(html))
		return func(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
			return page, nil
		}, nil
	}
}

func (a *App) playgroundPage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	return views.Playground(views.PlaygroundData{
		Sandbox: a.Catalog.SandboxAttr(),
		Samples: a.Catalog.PlaygroundSamples,
		CSRF:    pageRequestFrom(ctx).csrf,
	}), nil
}

func (a *App) decisionPage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	req := pageRequestFrom(ctx)
	var result *quiz.Result
	if req.resultID != "" && !req.incomplete {
		result = Safe(a.devLog, "load quiz result", func() (*quiz.Result, error) {
			stored, err := a.Store.GetResult(ctx, req.resultID)
			if err != nil {
				return nil, err
			}
			return &stored.Result, nil
		}, nil)
	}
	tally := Safe(a.devLog, "load quiz tally", func() (quiz.Tally, error) {
		return a.Tally.Get(ctx)
	}, quiz.Tally{})

	return views.DecisionHelper(views.DecisionData{
		Questions:  a.Catalog.Questions,
		Result:     result,
		Tally:      tally,
		CSRF:       req.csrf,
		Incomplete: req.incomplete,
	}), nil
}

func (a *App) performancePage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	return views.Performance(a.Catalog.Metrics[content.React], a.Catalog.Metrics[content.Vue], a.Catalog.Performance), nil
}

func (a *App) communityPage(ctx context.Context, nav *router.Navigation) (templ.Component, error) {
	return views.Community(a.Catalog.Links, a.Catalog.Metrics), nil
}
