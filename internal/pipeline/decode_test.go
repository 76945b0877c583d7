package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/alnah/go-doc2web/internal/layout"
)

func TestMarkdownDecoder_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  layout.Document
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "heading levels",
			input: "# One\n\n## Two\n\n### Three\n\n#### Four\n",
			want:  layout.Document{title("One"), heading("Two"), subheading("Three"), subheading("Four")},
		},
		{
			name:  "setext headings",
			input: "Top\n===\n\nSection\n-------\n",
			want:  layout.Document{title("Top"), heading("Section")},
		},
		{
			name:  "tight and loose lists",
			input: "- a\n- b\n\n1. c\n\n2. d\n",
			want:  layout.Document{item("a"), item("b"), item("c"), item("d")},
		},
		{
			name:  "nested list flattens",
			input: "- outer\n  - inner\n",
			want:  layout.Document{item("outer"), item("inner")},
		},
		{
			name:  "inline formatting flattened",
			input: "Some **bold** and *italic* with `code` and [a link](http://x).\n",
			want:  layout.Document{para("Some bold and italic with code and a link.")},
		},
		{
			name:  "soft line breaks joined",
			input: "first line\nsecond line\n",
			want:  layout.Document{para("first line second line")},
		},
		{
			name:  "blockquote paragraphs",
			input: "> quoted\n",
			want:  layout.Document{para("quoted")},
		},
		{
			name:  "code block becomes paragraph",
			input: "```\nx := 1\ny := 2\n```\n",
			want:  layout.Document{para("x := 1 y := 2")},
		},
		{
			name:  "thematic break and html dropped",
			input: "A\n\n---\n\n<div>raw</div>\n\nB\n",
			want:  layout.Document{para("A"), para("B")},
		},
	}

	d := NewMarkdownDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := d.Decode(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestMarkdownDecoder_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMarkdownDecoder().Decode(ctx, "# T")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Decode() error = %v, want context.Canceled", err)
	}
}

func TestMarkdownDecoder_ThroughNormalize(t *testing.T) {
	t.Parallel()

	doc, err := NewMarkdownDecoder().Decode(context.Background(), "# Report\n\nIntro text.\n\n* one\n* two\n")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := Normalize(layout.FromDocument(doc))
	want := "# Report\n\nIntro text.\n\n- one\n- two"
	if got != want {
		t.Errorf("Normalize(Decode()) = %q, want %q", got, want)
	}
}
