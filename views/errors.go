package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/seo"
)

// NotFound is the full 404 document.
func NotFound(site seo.Site) templ.Component {
	return Shell(site, NavItems(""), component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="error-page"><h1>Page not found</h1><p>That page does not exist. <a href="/">Back to the comparison</a>.</p></section>`)
	}))
}

// ServerError is the full 5xx document.
func ServerError(site seo.Site) templ.Component {
	return Shell(site, NavItems(""), component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="error-page"><h1>Something went wrong</h1><p>Please try again in a moment.</p></section>`)
	}))
}
