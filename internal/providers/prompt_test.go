package providers

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	got := BuildPrompt("# A {markdown} 100%")
	if !strings.HasPrefix(got, "Convert the following Markdown content into a beautiful, modern HTML webpage.") {
		t.Errorf("unexpected prompt prefix: %q", got)
	}
	if !strings.Contains(got, "Markdown content:\n# A {markdown} 100%\n\n") {
		t.Errorf("markup not embedded verbatim: %q", got)
	}
	if !strings.HasSuffix(got, "Generate a complete, single-file HTML page with embedded CSS.") {
		t.Errorf("unexpected prompt suffix: %q", got)
	}
}

func TestStripFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "<html></html>", want: "<html></html>"},
		{name: "surrounding space", input: "\n  <html></html>  \n", want: "<html></html>"},
		{name: "html fence", input: "```html\n<html></html>\n```", want: "<html></html>"},
		{name: "bare fence", input: "```\n<p>x</p>\n```\n", want: "<p>x</p>"},
		{name: "unterminated fence", input: "```html\n<p>x</p>", want: "<p>x</p>"},
		{name: "fence only", input: "```", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripFences(tt.input); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
