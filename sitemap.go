package vuevreact

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jezweb/vuevreact/content"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet is a sitemaps.org document.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one <url> block.
type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// BuildSitemap returns one URL per entry: loc is baseURL followed by the
// entry path and lastmod is now as a UTC date.
func BuildSitemap(baseURL string, entries []content.SitemapEntry, now time.Time) URLSet {
	lastmod := now.UTC().Format(time.DateOnly)
	set := URLSet{XMLNS: sitemapNS, URLs: make([]SitemapURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        baseURL + e.Path,
			LastMod:    lastmod,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		})
	}
	return set
}

// WriteSitemap writes set as an XML document.
func WriteSitemap(w io.Writer, set URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// GenerateSitemapFile writes the sitemap for entries to path, creating its
// directory.
func GenerateSitemapFile(path, baseURL string, entries []content.SitemapEntry, now time.Time) error {
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, BuildSitemap(baseURL, entries, now)); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (a *App) renderSitemap(c echo.Context) error {
	set := BuildSitemap(a.Config.URL, a.Catalog.Sitemap, time.Now())
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response(), set)
}
