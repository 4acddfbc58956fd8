package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/content"
)

// Learn lists the lessons.
func Learn(lessons []content.Document, cfg content.LearningConfig) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<h1>Learn Vue &amp; React</h1><p>Every lesson shows both frameworks side by side. About `)
		w.int(cfg.MinutesPerLesson * len(lessons))
		w.raw(` minutes in total.</p><ol class="lessons">`)
		for _, l := range lessons {
			w.raw(`<li><a`)
			w.attr("href", "/learn/"+l.Slug)
			w.raw(`><h2>`)
			w.text(l.Title)
			w.raw(`</h2></a><p>`)
			w.text(l.Summary)
			w.raw(`</p><span class="badge">`)
			w.text(cfg.Difficulty(l.Difficulty))
			w.raw(`</span> <span class="duration">`)
			w.int(cfg.MinutesPerLesson)
			w.raw(` min</span></li>`)
		}
		w.raw(`</ol>`)
	})
}

// Lesson renders one lesson with its pre-rendered body.
func Lesson(doc content.Document, body templ.Component, cfg content.LearningConfig) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<article class="lesson"><p><a href="/learn">← All lessons</a></p><h1>`)
		w.text(doc.Title)
		w.raw(`</h1><p class="meta"><span class="badge">`)
		w.text(cfg.Difficulty(doc.Difficulty))
		w.raw(`</span> `)
		w.int(cfg.MinutesPerLesson)
		w.raw(` min</p>`)
		w.render(ctx, body)
		w.raw(`</article>`)
	})
}

// Guide renders a guide page (migration, examples, case studies).
func Guide(doc content.Document, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<article class="guide"><h1>`)
		w.text(doc.Title)
		w.raw(`</h1><p class="lead">`)
		w.text(doc.Summary)
		w.raw(`</p>`)
		w.render(ctx, body)
		w.raw(`</article>`)
	})
}
