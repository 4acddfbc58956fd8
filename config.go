package vuevreact

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jezweb/vuevreact/content"
	"github.com/jezweb/vuevreact/seo"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name string // Site name (default "Vue vs React - Interactive Comparison")
	URL  string // Canonical URL (default "https://vue-vs-react.netlify.app")

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path for quiz results (default "data/vuevreact.db")

	SessionSecret string // Required outside development
	CookieSecure  bool   // Set true for HTTPS

	Dev      bool   // Development mode: errors are logged
	LogLevel string // zap level name (default "info")

	TallyCacheTTL time.Duration // Quiz tally cache TTL (default 1min)
	PreviewLimit  int           // Playground previews per IP per minute (default 30)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = seo.DefaultSiteName
	}
	if c.URL == "" {
		c.URL = seo.DefaultSiteURL
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/vuevreact.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TallyCacheTTL == 0 {
		c.TallyCacheTTL = time.Minute
	}
	if c.PreviewLimit == 0 {
		c.PreviewLimit = 30
	}
}

// Site returns the site identity used for metadata.
func (c SiteConfig) Site() seo.Site {
	return seo.Site{URL: c.URL, Name: c.Name}.WithDefaults()
}

// ConfigFromEnv reads SITE_URL, SITE_NAME, ADDR, DATABASE_PATH,
// SESSION_SECRET, COOKIE_SECURE, APP_ENV and LOG_LEVEL. Unset values keep
// their defaults.
func ConfigFromEnv() SiteConfig {
	secure, _ := strconv.ParseBool(EnvOr("COOKIE_SECURE", "false"))
	cfg := SiteConfig{
		Name:          EnvOr("SITE_NAME", ""),
		URL:           EnvOr("SITE_URL", ""),
		Addr:          EnvOr("ADDR", ""),
		DatabasePath:  EnvOr("DATABASE_PATH", ""),
		SessionSecret: EnvOr("SESSION_SECRET", ""),
		CookieSecure:  secure,
		Dev:           EnvOr("APP_ENV", "production") == "development",
		LogLevel:      EnvOr("LOG_LEVEL", ""),
	}
	cfg.setDefaults()
	return cfg
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger replaces the logger built from the config.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithCatalog replaces the embedded content catalog.
func WithCatalog(c *content.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// WithStaticDir sets the directory for generated static assets such as
// social cards (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
