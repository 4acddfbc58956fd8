package views

import (
	"context"
	"fmt"
	"time"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/content"
)

// HomeData feeds the landing page.
type HomeData struct {
	React     content.Metrics
	Vue       content.Metrics
	Animation content.AnimationDelays
}

type feature struct {
	title, description, href string
}

var features = []feature{
	{"Side-by-side code", "The same feature written in both frameworks.", "/comparison"},
	{"Learning path", "Short lessons that teach both at once.", "/learn"},
	{"Live playground", "Run React or Vue code in a sandbox.", "/playground"},
	{"Decision helper", "Five questions, one recommendation.", "/decision-helper"},
}

func delayStyle(d time.Duration) string {
	return fmt.Sprintf("animation-delay: %dms", d.Milliseconds())
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Home renders the landing page.
func Home(d HomeData) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<section class="hero">`)
		w.raw(`<h1 class="fade-in"`)
		w.attr("style", delayStyle(ms(d.Animation.HeroTitleMS)))
		w.raw(`>Vue vs React</h1><p class="fade-in"`)
		w.attr("style", delayStyle(ms(d.Animation.HeroSubtitleMS)))
		w.raw(`>Compare the two most popular UI frameworks with real code, numbers and a quiz.</p>`)
		w.raw(`<div class="hero-buttons fade-in"`)
		w.attr("style", delayStyle(ms(d.Animation.HeroButtonsMS)))
		w.raw(`><a class="button" href="/comparison">Start comparing</a>`)
		w.raw(`<a class="button secondary" href="/decision-helper">Help me decide</a></div></section>`)

		w.raw(`<section class="features">`)
		for i, f := range features {
			w.raw(`<a class="card fade-in"`)
			w.attr("href", f.href)
			w.attr("style", delayStyle(d.Animation.FeatureCard(i)))
			w.raw(`><h2>`)
			w.text(f.title)
			w.raw(`</h2><p>`)
			w.text(f.description)
			w.raw(`</p></a>`)
		}
		w.raw(`</section>`)

		w.raw(`<section class="fade-in"`)
		w.attr("style", delayStyle(ms(d.Animation.ComparisonTableMS)))
		w.raw(`><h2>At a glance</h2>`)
		w.render(ctx, MetricsTable(d.React, d.Vue))
		w.raw(`</section>`)
	})
}

// MetricsTable compares headline metrics.
func MetricsTable(react, vue content.Metrics) templ.Component {
	rows := []struct {
		label      string
		react, vue string
	}{
		{"Bundle size (min+gzip)", react.BundleSize, vue.BundleSize},
		{"GitHub stars", react.GitHubStars, vue.GitHubStars},
		{"Initial render", fmt.Sprintf("%d ms", react.InitialRenderMS), fmt.Sprintf("%d ms", vue.InitialRenderMS)},
		{"Memory usage", react.MemoryUsage, vue.MemoryUsage},
		{"npm weekly downloads", react.NPMWeeklyDownloads, vue.NPMWeeklyDownloads},
		{"First release", fmt.Sprint(react.FirstRelease), fmt.Sprint(vue.FirstRelease)},
		{"Current version", react.CurrentVersion, vue.CurrentVersion},
	}
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<table class="metrics"><thead><tr><th></th><th>`)
		w.text(react.Name)
		w.raw(`</th><th>`)
		w.text(vue.Name)
		w.raw(`</th></tr></thead><tbody>`)
		for _, r := range rows {
			w.raw(`<tr><th scope="row">`)
			w.text(r.label)
			w.raw(`</th><td>`)
			w.text(r.react)
			w.raw(`</td><td>`)
			w.text(r.vue)
			w.raw(`</td></tr>`)
		}
		w.raw(`</tbody></table>`)
	})
}
