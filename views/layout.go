// Package views renders the site's HTML as templ components.
package views

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/router"
	"github.com/jezweb/vuevreact/seo"
)

// AppSelector addresses the element page bodies are mounted into.
const AppSelector = "#app"

// NavItem is a rendered navigation link.
type NavItem struct {
	Href   string
	Label  string
	Active bool
}

var mainNav = []NavItem{
	{Href: "/", Label: "Home"},
	{Href: "/comparison", Label: "Compare"},
	{Href: "/learn", Label: "Learn"},
	{Href: "/playground", Label: "Playground"},
	{Href: "/decision-helper", Label: "Decide"},
	{Href: "/performance", Label: "Performance"},
	{Href: "/community", Label: "Community"},
}

// NavItems marks the entry for currentPath as active. An empty path marks
// nothing.
func NavItems(currentPath string) []NavItem {
	items := make([]NavItem, len(mainNav))
	for i, it := range mainNav {
		it.Active = isActive(it.Href, currentPath)
		items[i] = it
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if currentPath == "" {
		return false
	}
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Shell is the document every page is mounted into. The title and metadata it
// carries are placeholders; the router and the synchronizer own them.
func Shell(site seo.Site, nav []NavItem, body templ.Component) templ.Component {
	site = site.WithDefaults()
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<title>`)
		w.text(router.FallbackTitle)
		w.raw(`</title><link rel="stylesheet" href="/public/style.css"></head><body>`)
		w.raw(`<header class="site-header"><a class="brand" href="/">`)
		w.text(site.Name)
		w.raw(`</a><nav aria-label="Main">`)
		for _, it := range nav {
			w.raw(`<a`)
			w.attr("href", it.Href)
			if it.Active {
				w.raw(` class="active" aria-current="page"`)
			}
			w.raw(`>`)
			w.text(it.Label)
			w.raw(`</a>`)
		}
		w.raw(`</nav></header><main id="app">`)
		w.render(ctx, body)
		w.raw(`</main><footer class="site-footer"><p>`)
		w.text(site.Name)
		w.raw(` · <a href="/sitemap.xml">Sitemap</a></p></footer></body></html>`)
	})
}
