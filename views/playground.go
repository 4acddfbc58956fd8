package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/content"
)

// PlaygroundData feeds the playground page.
type PlaygroundData struct {
	Sandbox string
	Samples map[string]string
	CSRF    string
}

// PreviewFrame is the name of the iframe previews are loaded into.
const PreviewFrame = "preview"

// Playground renders one editor form per framework; each posts into the
// sandboxed preview frame.
func Playground(d PlaygroundData) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<h1>Code Playground</h1><div class="side-by-side">`)
		for _, fw := range []struct{ id, label string }{{content.React, "React"}, {content.Vue, "Vue"}} {
			w.raw(`<form class="editor" method="post" action="/playground/preview"`)
			w.attr("target", PreviewFrame)
			w.raw(`><h2>`)
			w.text(fw.label)
			w.raw(`</h2><input type="hidden" name="_csrf"`)
			w.attr("value", d.CSRF)
			w.raw(`><input type="hidden" name="framework"`)
			w.attr("value", fw.id)
			w.raw(`><textarea name="code" rows="14" spellcheck="false">`)
			w.text(d.Samples[fw.id])
			w.raw(`</textarea><button type="submit">Run `)
			w.text(fw.label)
			w.raw(`</button></form>`)
		}
		w.raw(`</div><iframe class="preview" title="Preview"`)
		w.attr("name", PreviewFrame)
		w.attr("sandbox", d.Sandbox)
		w.raw(`></iframe>`)
	})
}
