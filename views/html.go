package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so component bodies stay linear.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) int(n int) {
	w.raw(strconv.Itoa(n))
}

// attr writes ` name="value"` with value escaped.
func (w *writer) attr(name, value string) {
	w.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (w *writer) render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

func component(fn func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		fn(ctx, w)
		return w.err
	})
}
