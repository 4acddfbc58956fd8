package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/jezweb/vuevreact/content"
	"github.com/jezweb/vuevreact/quiz"
	"github.com/jezweb/vuevreact/seo"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestShellMountsBodyAndMarksActiveNav(t *testing.T) {
	t.Parallel()

	body := component(func(ctx context.Context, w *writer) { w.raw(`<p class="probe">hi</p>`) })
	doc := render(t, Shell(seo.Site{Name: "Site <Name>"}, NavItems("/comparison/forms"), body))

	require.Equal(t, "Vue vs React", doc.Find("title").Text())
	require.Equal(t, 1, doc.Find(AppSelector+" p.probe").Length())
	require.Equal(t, "Site <Name>", doc.Find("a.brand").Text())
	active := doc.Find("nav a.active")
	require.Equal(t, 1, active.Length())
	require.Equal(t, "/comparison", active.AttrOr("href", ""))
}

func TestNavItems(t *testing.T) {
	t.Parallel()

	require.True(t, NavItems("/")[0].Active)
	require.False(t, NavItems("/learn")[0].Active)
	for _, it := range NavItems("") {
		require.False(t, it.Active, it.Href)
	}
}

func TestMetricsTableEscapes(t *testing.T) {
	t.Parallel()

	doc := render(t, MetricsTable(
		content.Metrics{Name: "React", BundleSize: "<45KB>"},
		content.Metrics{Name: "Vue", BundleSize: "34KB", InitialRenderMS: 13},
	))
	require.Equal(t, "<45KB>", doc.Find("tbody tr").First().Find("td").First().Text())
	require.Contains(t, doc.Text(), "13 ms")
}

func TestDecisionHelperShowsResultAndTally(t *testing.T) {
	t.Parallel()

	d := DecisionData{
		Questions: []quiz.Question{{ID: "team", Prompt: "Team?", Options: []quiz.Option{{ID: "js", Label: "JS"}, {ID: "html", Label: "HTML"}}}},
		Result:    &quiz.Result{React: 3, Vue: 1, Recommendation: quiz.React, Reasons: []string{"JSX"}},
		Tally:     quiz.Tally{React: 1, Vue: 1},
		CSRF:      "tok",
	}
	doc := render(t, DecisionHelper(d))

	require.Contains(t, doc.Find("#result h2").Text(), "React")
	require.Equal(t, 2, doc.Find(`input[name="q_team"]`).Length())
	require.Equal(t, "tok", doc.Find(`input[name="_csrf"]`).AttrOr("value", ""))
	require.Contains(t, doc.Find(".tally").Text(), "React 50%")
	require.Equal(t, 0, doc.Find(".error").Length())
}

func TestDecisionHelperIncomplete(t *testing.T) {
	t.Parallel()

	doc := render(t, DecisionHelper(DecisionData{Incomplete: true}))
	require.Equal(t, 1, doc.Find(".error").Length())
	require.Equal(t, 0, doc.Find("#result").Length())
	require.Equal(t, 0, doc.Find(".tally").Length())
}

func TestPlaygroundSandbox(t *testing.T) {
	t.Parallel()

	doc := render(t, Playground(PlaygroundData{
		Sandbox: "allow-scripts allow-forms",
		Samples: map[string]string{content.React: "<Counter />"},
	}))
	frame := doc.Find("iframe.preview")
	require.Equal(t, "allow-scripts allow-forms", frame.AttrOr("sandbox", ""))
	require.Equal(t, PreviewFrame, frame.AttrOr("name", ""))
	require.Equal(t, 2, doc.Find(`form[target="preview"]`).Length())
	require.Equal(t, "<Counter />", doc.Find("textarea").First().Text())
}

func TestNotFoundDocument(t *testing.T) {
	t.Parallel()

	doc := render(t, NotFound(seo.Site{}))
	require.Contains(t, doc.Find("h1").Text(), "Page not found")
	require.Equal(t, 0, doc.Find("nav a.active").Length())
}
