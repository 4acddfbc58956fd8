package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
		{"[link](https://vuejs.org)", `<a href="https://vuejs.org">link</a>`},
		{"~~gone~~", "<del>gone</del>"},
	}
	for _, tt := range tests {
		got, err := Render(tt.input)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", tt.input, err)
		}
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderHeadingIDs(t *testing.T) {
	got, err := Render("## Local state\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<h2 id="local-state">Local state</h2>`) {
		t.Errorf("heading id missing: %q", got)
	}
}

func TestRenderFencedCode(t *testing.T) {
	got, err := Render("```jsx\nconst a = <b/>\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `<code class="language-jsx">`) {
		t.Errorf("language class missing: %q", got)
	}
	if !strings.Contains(got, "&lt;b/&gt;") {
		t.Errorf("code not escaped: %q", got)
	}
}

func TestRenderDropsRawHTML(t *testing.T) {
	got, err := Render("<script>alert(1)</script>\n")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw html passed through: %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	got, err := Render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<table>") || !strings.Contains(got, "<td>1</td>") {
		t.Errorf("table not rendered: %q", got)
	}
}

func TestHTMLComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML("<p>x</p>").Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<p>x</p>" {
		t.Errorf("HTML() = %q", buf.String())
	}
}
