package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/quiz"
)

// DecisionData feeds the decision helper.
type DecisionData struct {
	Questions  []quiz.Question
	Result     *quiz.Result
	Tally      quiz.Tally
	CSRF       string
	Incomplete bool
}

// DecisionHelper renders the quiz and, once answered, its recommendation.
func DecisionHelper(d DecisionData) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<h1>Framework Decision Helper</h1>`)
		if d.Result != nil {
			decisionResult(w, *d.Result)
		}
		if d.Incomplete {
			w.raw(`<p class="error" role="alert">Please answer every question.</p>`)
		}
		w.raw(`<form class="quiz" method="post" action="/decision-helper"><input type="hidden" name="_csrf"`)
		w.attr("value", d.CSRF)
		w.raw(`>`)
		for i, q := range d.Questions {
			w.raw(`<fieldset><legend>`)
			w.int(i + 1)
			w.raw(`. `)
			w.text(q.Prompt)
			w.raw(`</legend>`)
			for _, o := range q.Options {
				w.raw(`<label><input type="radio" required`)
				w.attr("name", "q_"+q.ID)
				w.attr("value", o.ID)
				w.raw(`> `)
				w.text(o.Label)
				w.raw(`</label>`)
			}
			w.raw(`</fieldset>`)
		}
		w.raw(`<button type="submit">Get my recommendation</button></form>`)
		if total := d.Tally.Total(); total > 0 {
			w.raw(`<p class="tally">So far `)
			w.int(total)
			w.raw(` visitors were recommended: React `)
			w.int(d.Tally.Percent(quiz.React))
			w.raw(`%, Vue `)
			w.int(d.Tally.Percent(quiz.Vue))
			w.raw(`%, either `)
			w.int(d.Tally.Percent(quiz.Either))
			w.raw(`%.</p>`)
		}
	})
}

func decisionResult(w *writer, r quiz.Result) {
	w.raw(`<section id="result" class="result"><h2>Our recommendation: `)
	w.text(r.Recommendation.Label())
	w.raw(`</h2><p>React `)
	w.int(r.React)
	w.raw(` · Vue `)
	w.int(r.Vue)
	w.raw(`</p>`)
	if len(r.Reasons) > 0 {
		w.raw(`<ul>`)
		for _, reason := range r.Reasons {
			w.raw(`<li>`)
			w.text(reason)
			w.raw(`</li>`)
		}
		w.raw(`</ul>`)
	}
	w.raw(`</section>`)
}
