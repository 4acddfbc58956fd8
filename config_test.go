package vuevreact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jezweb/vuevreact/seo"
)

func TestConfigDefaults(t *testing.T) {
	for _, k := range []string{"SITE_URL", "SITE_NAME", "ADDR", "DATABASE_PATH", "SESSION_SECRET", "COOKIE_SECURE", "APP_ENV", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := ConfigFromEnv()
	require.Equal(t, seo.DefaultSiteURL, cfg.URL)
	require.Equal(t, seo.DefaultSiteName, cfg.Name)
	require.Equal(t, ":3000", cfg.Addr)
	require.Equal(t, "data/vuevreact.db", cfg.DatabasePath)
	require.False(t, cfg.Dev)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, time.Minute, cfg.TallyCacheTTL)
	require.Equal(t, 30, cfg.PreviewLimit)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.test/")
	t.Setenv("SITE_NAME", "Frameworks")
	t.Setenv("ADDR", ":8080")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := ConfigFromEnv()
	require.Equal(t, "https://example.test", cfg.URL)
	require.Equal(t, ":8080", cfg.Addr)
	require.True(t, cfg.CookieSecure)
	require.True(t, cfg.Dev)
	require.Equal(t, seo.Site{URL: "https://example.test", Name: "Frameworks"}, cfg.Site())
}

func TestNewLoggerLevel(t *testing.T) {
	l, err := NewLogger(false, "debug")
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger(false, "not-a-level")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = NewLogger(true, "warn")
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
}
