// Package markdown renders lesson and guide Markdown as templ components.
package markdown

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Raw HTML in sources is dropped: goldmark escapes it unless WithUnsafe is set.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Render converts src to HTML. Headings get ids so fragment links such as
// /learn/state#local-state land on them.
func Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTML wraps already rendered HTML as a component.
func HTML(rendered string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, rendered)
		return err
	})
}
