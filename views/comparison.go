package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/content"
)

// Comparison lists the comparison topics.
func Comparison(topics []content.Topic, react, vue content.Metrics) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<h1>Detailed Comparison</h1><ul class="topics">`)
		for _, t := range topics {
			w.raw(`<li><a`)
			w.attr("href", "/comparison/"+t.Slug)
			w.raw(`><h2>`)
			w.text(t.Title)
			w.raw(`</h2><p>`)
			w.text(t.Summary)
			w.raw(`</p></a></li>`)
		}
		w.raw(`</ul><h2 id="metrics">Metrics</h2>`)
		w.render(ctx, MetricsTable(react, vue))
	})
}

// Topic shows one topic's snippets side by side.
func Topic(topic content.Topic, all []content.Topic) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<p><a href="/comparison">← All topics</a></p><h1>`)
		w.text(topic.Title)
		w.raw(`</h1><p>`)
		w.text(topic.Summary)
		w.raw(`</p><div class="side-by-side">`)
		codePanel(w, "React", "jsx", topic.React)
		codePanel(w, "Vue", "vue", topic.Vue)
		w.raw(`</div><nav class="topic-nav" aria-label="Topics">`)
		for _, t := range all {
			if t.Slug == topic.Slug {
				continue
			}
			w.raw(`<a`)
			w.attr("href", "/comparison/"+t.Slug)
			w.raw(`>`)
			w.text(t.Title)
			w.raw(`</a>`)
		}
		w.raw(`</nav>`)
	})
}

func codePanel(w *writer, label, lang, code string) {
	w.raw(`<section class="code-panel"><h2>`)
	w.text(label)
	w.raw(`</h2><pre><code`)
	w.attr("class", "language-"+lang)
	w.raw(`>`)
	w.text(code)
	w.raw(`</code></pre></section>`)
}
