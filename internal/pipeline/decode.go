package pipeline

import (
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-doc2web/internal/layout"
)

// MarkdownDecoder classifies free-form Markdown (as returned by vision OCR
// models) into layout blocks, so it can be re-normalized into the canonical
// grammar. Inline formatting is flattened to plain text.
type MarkdownDecoder struct {
	md goldmark.Markdown
}

// NewMarkdownDecoder creates a MarkdownDecoder with CommonMark parsing.
func NewMarkdownDecoder() *MarkdownDecoder {
	return &MarkdownDecoder{md: goldmark.New()}
}

// Decode parses markdown and returns its blocks in reading order.
// Level 1 headings become titles, level 2 headings, deeper levels
// subheadings. Every paragraph inside a list (at any depth) becomes a list
// item. Code blocks become paragraphs. HTML blocks and thematic breaks are
// dropped.
func (d *MarkdownDecoder) Decode(ctx context.Context, markdown string) (layout.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := []byte(markdown)
	root := d.md.Parser().Parse(text.NewReader(src))

	var doc layout.Document
	collectBlocks(root, src, false, &doc)
	return doc, nil
}

func collectBlocks(parent ast.Node, src []byte, inList bool, doc *layout.Document) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			appendBlock(doc, headingKind(node.Level), inlineText(node, src))
		case *ast.Paragraph, *ast.TextBlock:
			kind := layout.KindParagraph
			if inList {
				kind = layout.KindListItem
			}
			appendBlock(doc, kind, inlineText(node, src))
		case *ast.List, *ast.ListItem:
			collectBlocks(node, src, true, doc)
		case *ast.Blockquote:
			collectBlocks(node, src, inList, doc)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			appendBlock(doc, layout.KindParagraph, codeText(node, src))
		}
	}
}

func headingKind(level int) layout.Kind {
	switch level {
	case 1:
		return layout.KindTitle
	case 2:
		return layout.KindHeading
	default:
		return layout.KindSubheading
	}
}

func appendBlock(doc *layout.Document, kind layout.Kind, s string) {
	if s == "" {
		return
	}
	*doc = append(*doc, layout.Block{Kind: kind, Text: s})
}

// inlineText flattens the inline children of n to a single line.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

// codeText joins the raw lines of a code block with spaces.
func codeText(n ast.Node, src []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if line := strings.TrimSpace(string(seg.Value(src))); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
