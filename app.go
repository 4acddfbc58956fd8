// Package vuevreact serves the Vue vs React comparison site. Every page is
// rendered into an HTML document on the server; the router sets the
// document title and the metadata synchronizer rewrites the head for the
// route before the document is sent.
package vuevreact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jezweb/vuevreact/content"
	"github.com/jezweb/vuevreact/router"
)

// App wires together the content catalog, route table, store, cache,
// handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Tally   *TallyCache
	Catalog *content.Catalog
	Routes  *router.Table
	Logger  *zap.Logger

	// devLog is Logger in development and a no-op otherwise.
	devLog         *zap.Logger
	previewLimiter *RateLimiter
	staticDir      string
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init loads content, opens the store and registers middleware and routes.
// Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.Logger == nil {
		logger, err := NewLogger(a.Config.Dev, a.Config.LogLevel)
		if err != nil {
			return fmt.Errorf("vuevreact: init logger: %w", err)
		}
		a.Logger = logger
	}
	a.devLog = zap.NewNop()
	if a.Config.Dev {
		a.devLog = a.Logger
	}

	if a.Config.SessionSecret == "" {
		if !a.Config.Dev {
			return errors.New("vuevreact: SessionSecret is required")
		}
		a.Config.SessionSecret = uuid.NewString()
	}

	if a.Catalog == nil {
		catalog, err := content.Load()
		if err != nil {
			return fmt.Errorf("vuevreact: load content: %w", err)
		}
		a.Catalog = catalog
	}

	routes, err := a.PageRoutes()
	if err != nil {
		return fmt.Errorf("vuevreact: route table: %w", err)
	}
	a.Routes = routes

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("vuevreact: init store: %w", err)
	}
	a.Store = store

	a.Tally = NewTallyCache(a.Store, a.Config.TallyCacheTTL)
	a.previewLimiter = NewRateLimiter(a.Config.PreviewLimit, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Start initializes the app and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("site", a.Config.URL), zap.Bool("dev", a.Config.Dev))
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets; everything else under /public comes from staticDir.
	staticFS, _ := fs.Sub(StaticAssets, "static")
	embedded := http.FileServer(http.FS(staticFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embedded)))
	e.GET("/vite.svg", echo.WrapHandler(embedded))
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/api/meta", a.handleMeta)
	e.POST("/decision-helper", a.handleQuizSubmit)
	e.POST("/playground/preview", a.handlePreview)

	e.GET("/", a.handlePage)
	e.GET("/*", a.handlePage)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.previewLimiter != nil {
		a.previewLimiter.Stop()
	}
	if a.Store != nil {
		a.Store.Close()
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
