package vuevreact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jezweb/vuevreact/content"
	"github.com/jezweb/vuevreact/quiz"
	"github.com/jezweb/vuevreact/router"
	"github.com/jezweb/vuevreact/seo"
	"github.com/jezweb/vuevreact/views"
)

const maxPreviewCode = 64 << 10

// handlePage renders a routed page: the shell document is parsed and the
// router navigates to the request path and sets the title. After the
// navigation the page body is mounted into the shell and the synchronizer
// observes the new path and rewrites the head.
func (a *App) handlePage(c echo.Context) error {
	req := c.Request()
	ctx := req.Context()

	var shell bytes.Buffer
	if err := views.Shell(a.Config.Site(), views.NavItems(req.URL.Path), nil).Render(ctx, &shell); err != nil {
		return err
	}
	head, err := seo.ParseHead(&shell)
	if err != nil {
		return err
	}

	ctx = withPageRequest(ctx, pageRequest{
		csrf:       CsrfToken(c),
		resultID:   lastResultID(c),
		incomplete: c.QueryParam("incomplete") == "1",
	})

	session := router.NewSession(a.Routes, head)
	sync := seo.NewSynchronizer(head, a.Config.Site(), a.Catalog.SEO)
	var mountErr error
	session.AfterEach(func(nav *router.Navigation) {
		if nav.RedirectedFrom != "" {
			return
		}
		if mountErr = a.mountPage(ctx, head, nav); mountErr == nil {
			sync.Observe(nav.To.Path)
		}
	})

	nav, err := session.Push(req.URL.Path, router.Position{})
	if errors.Is(err, router.ErrNoRoute) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	if nav.RedirectedFrom != "" {
		target := nav.To.Path
		if q := req.URL.RawQuery; q != "" {
			target += "?" + q
		}
		return c.Redirect(http.StatusMovedPermanently, target)
	}
	if errors.Is(mountErr, content.ErrNotFound) {
		return echo.ErrNotFound
	}
	if mountErr != nil {
		return mountErr
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return head.Render(c.Response())
}

// mountPage loads the navigation's page and renders it into the shell.
func (a *App) mountPage(ctx context.Context, head *seo.Head, nav *router.Navigation) error {
	page, err := nav.Route.Page()
	if err != nil {
		return err
	}
	body, err := page(ctx, nav)
	if err != nil {
		return err
	}
	return mount(ctx, head, body)
}

func mount(ctx context.Context, head *seo.Head, body templ.Component) error {
	var buf bytes.Buffer
	if err := body.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	head.Document().Find(views.AppSelector).SetHtml(buf.String())
	return nil
}

type titleRecorder struct{ title string }

func (t *titleRecorder) SetTitle(title string) { t.title = title }

type metaResponse struct {
	Path   string              `json:"path"`
	Title  string              `json:"title"`
	Scroll router.ScrollTarget `json:"scroll"`
	Writes []seo.Write         `json:"writes"`
}

// handleMeta returns the title, scroll target and metadata writes for a
// client-side navigation to ?path=, so it can be applied without a full page
// load. The fragment may come inside path or as ?hash=. With ?from= and
// ?dir=back or ?dir=forward the navigation is replayed through history so the
// saved ?left= and ?top= position for path is restored.
func (a *App) handleMeta(c echo.Context) error {
	p := c.QueryParam("path")
	if p == "" {
		p = "/"
	}
	if h := strings.TrimPrefix(c.QueryParam("hash"), "#"); h != "" && !strings.Contains(p, "#") {
		p += "#" + h
	}
	saved, err := scrollParams(c)
	if err != nil {
		return err
	}

	doc := &titleRecorder{}
	nav, err := replay(router.NewSession(a.Routes, doc), c.QueryParam("from"), p, c.QueryParam("dir"), saved)
	if errors.Is(err, router.ErrNoRoute) {
		return echo.NewHTTPError(http.StatusNotFound, "no route for "+router.Normalize(p))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, metaResponse{
		Path:   nav.To.Path,
		Title:  doc.title,
		Scroll: nav.Scroll,
		Writes: seo.Plan(nav.To.Path, a.Config.Site(), a.Catalog.SEO),
	})
}

// replay drives s from from to target. dir picks how target is reached:
// "back" and "forward" walk history onto an entry holding saved, anything
// else is a plain push.
func replay(s *router.Session, from, target, dir string, saved router.Position) (*router.Navigation, error) {
	if from == "" {
		if dir != "" {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "dir requires from")
		}
		return s.Push(target, router.Position{})
	}
	switch dir {
	case "back":
		if _, err := s.Push(target, router.Position{}); err != nil {
			return nil, err
		}
		if _, err := s.Push(from, saved); err != nil {
			return nil, err
		}
		return s.Back(router.Position{})
	case "forward":
		if _, err := s.Push(from, router.Position{}); err != nil {
			return nil, err
		}
		if _, err := s.Push(target, router.Position{}); err != nil {
			return nil, err
		}
		if _, err := s.Back(saved); err != nil {
			return nil, err
		}
		return s.Forward(router.Position{})
	case "":
		if _, err := s.Push(from, router.Position{}); err != nil {
			return nil, err
		}
		return s.Push(target, router.Position{})
	default:
		return nil, echo.NewHTTPError(http.StatusBadRequest, "dir must be back or forward")
	}
}

func scrollParams(c echo.Context) (router.Position, error) {
	var pos router.Position
	for _, f := range []struct {
		name string
		dst  *int
	}{{"left", &pos.Left}, {"top", &pos.Top}} {
		v := c.QueryParam(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return pos, echo.NewHTTPError(http.StatusBadRequest, f.name+" must be a non-negative integer")
		}
		*f.dst = n
	}
	return pos, nil
}

func (a *App) handleQuizSubmit(c echo.Context) error {
	answers := make(map[string]string, len(a.Catalog.Questions))
	for _, q := range a.Catalog.Questions {
		answers[q.ID] = c.FormValue("q_" + q.ID)
	}
	result, err := quiz.Score(a.Catalog.Questions, answers)
	if errors.Is(err, quiz.ErrIncomplete) || errors.Is(err, quiz.ErrUnknownOption) {
		return c.Redirect(http.StatusSeeOther, "/decision-helper?incomplete=1")
	}
	if err != nil {
		return err
	}

	stored, err := a.Store.SaveResult(c.Request().Context(), result)
	if err != nil {
		return err
	}
	a.Tally.Invalidate()
	if err := rememberResult(c, stored.ID); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/decision-helper#result")
}

func (a *App) handlePreview(c echo.Context) error {
	if !a.previewLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many previews, try again in a minute")
	}
	code := c.FormValue("code")
	if len(code) > maxPreviewCode {
		return c.String(http.StatusRequestEntityTooLarge, "Code too large")
	}
	doc, err := PreviewDocument(c.FormValue("framework"), code, a.Catalog.CDN)
	if errors.Is(err, ErrUnknownFramework) {
		return c.String(http.StatusBadRequest, "Unknown framework")
	}
	if err != nil {
		return err
	}
	h := c.Response().Header()
	h.Set("Content-Security-Policy", previewCSP)
	h.Set("X-Frame-Options", "SAMEORIGIN")
	return c.HTML(http.StatusOK, doc)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL))
}

// httpErrorHandler never shows error details to visitors. Failures are
// logged in development only.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code >= 500 {
		a.devLog.Error("request failed", zap.String("path", c.Request().URL.Path), zap.Int("status", code), zap.Error(err))
	} else {
		a.devLog.Debug("request rejected", zap.String("path", c.Request().URL.Path), zap.Int("status", code), zap.Error(err))
	}

	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, code, views.NotFound(a.Config.Site()))
	case code >= 500:
		_ = RenderStatus(c, code, views.ServerError(a.Config.Site()))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
