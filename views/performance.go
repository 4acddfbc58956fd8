package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/content"
)

// Performance renders the benchmark page.
func Performance(react, vue content.Metrics, cfg content.PerformanceTestConfig) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<h1>Performance Comparison</h1>`)
		w.render(ctx, MetricsTable(react, vue))
		w.raw(`<h2>Benchmarks</h2><ul class="benchmarks">`)
		item := func(label string, n int, unit string) {
			w.raw(`<li>`)
			w.text(label)
			w.raw(`: <strong>`)
			w.int(n)
			w.raw(`</strong> `)
			w.text(unit)
			w.raw(`</li>`)
		}
		item("List rendering", cfg.ListRenderingSize, "rows")
		item("Rapid updates", cfg.RapidUpdatesPerSecond, "updates per second")
		item("Real DOM test", cfg.RealDOMTestSize, "nodes")
		item("FPS sampling window", cfg.FPSTestDurationMS, "ms")
		item("Memory test", cfg.MemoryTestIterations, "iterations")
		item("Startup", cfg.StartupRuns, "measured runs")
		item("Startup warm-up", cfg.StartupWarmupRuns, "runs")
		w.raw(`</ul>`)
	})
}

// Community renders framework resources.
func Community(links map[string]content.Links, metrics map[string]content.Metrics) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<h1>Community Resources</h1><div class="side-by-side">`)
		for _, fw := range []string{content.React, content.Vue} {
			l := links[fw]
			m := metrics[fw]
			w.raw(`<section><h2>`)
			w.text(m.Name)
			w.raw(`</h2><p>`)
			w.text(m.GitHubStars)
			w.raw(` GitHub stars · `)
			w.text(m.NPMWeeklyDownloads)
			w.raw(` weekly downloads</p><ul>`)
			for _, link := range []struct{ label, href string }{
				{"Official site", l.Official},
				{"GitHub", l.GitHub},
				{"npm", l.NPM},
				{"DevTools", l.DevTools},
			} {
				w.raw(`<li><a rel="noopener"`)
				w.attr("href", link.href)
				w.raw(`>`)
				w.text(link.label)
				w.raw(`</a></li>`)
			}
			w.raw(`</ul></section>`)
		}
		w.raw(`</div>`)
	})
}
