package vuevreact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/a-h/templ"

	"github.com/jezweb/vuevreact/content"
)

// ErrUnknownFramework is returned for a playground framework other than
// react or vue.
var ErrUnknownFramework = errors.New("vuevreact: unknown framework")

// previewCSP lets the preview document load the framework builds and
// compile code in the page. It only applies inside the sandboxed frame.
const previewCSP = "default-src 'none'; script-src 'unsafe-inline' 'unsafe-eval' https://unpkg.com; style-src 'unsafe-inline'; img-src data: https:"

var scriptClose = regexp.MustCompile(`(?i)</(script)`)

// PreviewDocument assembles the document the playground frame runs: the
// framework's CDN scripts followed by code. The code is never evaluated
// here.
func PreviewDocument(framework, code string, cdn content.CDNURLs) (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Preview</title>\n")
	code = scriptClose.ReplaceAllString(code, `<\/$1`)

	switch framework {
	case content.React:
		for _, src := range []string{cdn.React.Production, cdn.React.DOM, cdn.React.Babel} {
			fmt.Fprintf(&b, "<script src=\"%s\" crossorigin></script>\n", templ.EscapeString(src))
		}
		b.WriteString("</head><body>\n<div id=\"root\"></div>\n<script type=\"text/babel\">\n")
	case content.Vue:
		fmt.Fprintf(&b, "<script src=\"%s\" crossorigin></script>\n", templ.EscapeString(cdn.Vue.Global))
		b.WriteString("</head><body>\n<div id=\"app\"></div>\n<script>\n")
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFramework, framework)
	}

	b.WriteString(code)
	b.WriteString("\n</script>\n</body></html>\n")
	return b.String(), nil
}
