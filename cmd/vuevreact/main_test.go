package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(stdout.String(), "vuevreact dev"))
}

func TestUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bogus"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), `unknown command "bogus"`)
}

func TestSitemapCommand(t *testing.T) {
	t.Setenv("SITE_URL", "https://example.test")
	out := filepath.Join(t.TempDir(), "nested", "sitemap.xml")

	var stdout, stderr bytes.Buffer
	code := run([]string{"sitemap", "--out", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "<loc>https://example.test/comparison</loc>")
}

func TestRoutesCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"routes"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.True(t, strings.HasPrefix(lines[0], "PATH"))
	require.Len(t, lines, 14)
	require.Regexp(t, `^/compare\s+compare\s+-> /comparison$`, lines[2])
	require.Regexp(t, `^/learn/:lesson\s+lesson\s+.*\(dynamic\)$`, lines[6])
	require.NotContains(t, lines[5], "(dynamic)")
}

func TestOGCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "shot.png")
	img := image.NewRGBA(image.Rect(0, 0, 300, 300))
	img.Set(10, 10, color.RGBA{R: 255, A: 255})
	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "og.jpg")
	var stdout, stderr bytes.Buffer
	code := run([]string{"og", "--src", src, "--out", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	_, err = os.Stat(out)
	require.NoError(t, err)
}

func TestOGCommandRequiresSource(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"og"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "--src is required")
}
