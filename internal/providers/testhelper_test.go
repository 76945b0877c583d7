package providers

import (
	"context"
	"sync/atomic"
)

// fakeTokens is a TokenSource returning a fixed token or error.
type fakeTokens struct {
	token string
	err   error
	calls atomic.Int32
}

func (f *fakeTokens) Token(context.Context) (string, error) {
	f.calls.Add(1)
	return f.token, f.err
}

var (
	pdfDocument  = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
	pngDocument  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	textDocument = []byte("just some plain text\n")
	htmlPage     = "<!DOCTYPE html><html><body>ok</body></html>"
	fencedPage   = "```html\n" + htmlPage + "\n```"
	sampleMarkup = "# Title\n\nBody"
)
