package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alnah/go-doc2web/internal/layout"
)

// ErrPageRender indicates the page skeleton could not be parsed or executed.
var ErrPageRender = errors.New("page template rendering failed")

// HTMLRenderer abstracts the markup-to-page rendering step.
type HTMLRenderer interface {
	Render(ctx context.Context, markup string) (string, error)
}

// blockTags maps block kinds to their HTML element.
var blockTags = map[layout.Kind]string{
	layout.KindTitle:      "h1",
	layout.KindHeading:    "h2",
	layout.KindSubheading: "h3",
	layout.KindParagraph:  "p",
	layout.KindListItem:   "li",
}

// pageData is the data passed to the page skeleton.
type pageData struct {
	Style   template.CSS
	Content template.HTML
}

// Renderer turns canonical markup into a complete HTML page without any
// network dependency. The output depends only on the markup, the page
// template and the stylesheet.
type Renderer struct {
	page  *template.Template
	style string

	// EscapeText HTML-escapes block text. Off by default: text is inserted
	// verbatim, so markup embedded in block text reaches the page as-is.
	EscapeText bool
}

// NewRenderer parses the page skeleton and checks that it executes.
func NewRenderer(pageTemplate, style string) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	r := &Renderer{page: tmpl, style: style}
	if _, err := r.Wrap(""); err != nil {
		return nil, err
	}
	return r, nil
}

// Render parses markup and returns the wrapped page.
func (r *Renderer) Render(ctx context.Context, markup string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.Wrap(r.Fragment(Parse(markup)))
}

// Fragment renders parsed blocks into HTML lines joined with "\n".
// Each list group becomes one <ul>. A break that falls on a group boundary
// is written after the group closes, so <br> never appears inside a list.
func (r *Renderer) Fragment(p Parsed) string {
	var (
		lines    []string
		breakIdx int
		groupIdx int
		inList   bool
	)

	flush := func(pos int) {
		if inList && p.Groups[groupIdx].End == pos {
			lines = append(lines, "</ul>")
			inList = false
			groupIdx++
		}
		for breakIdx < len(p.Breaks) && p.Breaks[breakIdx] == pos {
			lines = append(lines, "<br>")
			breakIdx++
		}
		if !inList && groupIdx < len(p.Groups) && p.Groups[groupIdx].Start == pos {
			lines = append(lines, "<ul>")
			inList = true
		}
	}

	for i, b := range p.Blocks {
		flush(i)
		lines = append(lines, r.element(b))
	}
	flush(len(p.Blocks))

	return strings.Join(lines, "\n")
}

// element renders a single block. Unknown kinds render as paragraphs.
func (r *Renderer) element(b layout.Block) string {
	tag, ok := blockTags[b.Kind]
	if !ok {
		tag = "p"
	}
	text := b.Text
	if r.EscapeText {
		text = html.EscapeString(text)
	}
	return "<" + tag + ">" + text + "</" + tag + ">"
}

// Wrap embeds a fragment into the page skeleton.
func (r *Renderer) Wrap(fragment string) (string, error) {
	var buf bytes.Buffer
	data := pageData{
		Style:   template.CSS(r.style),   // #nosec G203 -- stylesheet comes from trusted assets
		Content: template.HTML(fragment), // #nosec G203 -- verbatim by contract, see EscapeText
	}
	if err := r.page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ HTMLRenderer = (*Renderer)(nil)
