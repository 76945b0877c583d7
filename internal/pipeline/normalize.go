package pipeline

import (
	"strings"

	"github.com/alnah/go-doc2web/internal/layout"
)

// Normalize converts an extraction into canonical markup text.
// Pre-formatted extractions are returned unchanged. Structured documents are
// mapped one block per entry; entries are joined with "\n" and every entry
// except a list item carries its own trailing newline, so consecutive list
// items stay contiguous while other blocks are separated by a blank line.
// Blocks with empty text are dropped.
func Normalize(in layout.Extraction) string {
	if in.IsPreformatted() {
		return in.Text()
	}

	doc := in.Document()
	entries := make([]string, 0, len(doc))
	for _, b := range doc {
		if strings.TrimSpace(b.Text) == "" {
			continue
		}
		entries = append(entries, markupEntry(b))
	}
	return strings.Join(entries, "\n")
}

// markupEntry renders a single block. Unrecognized kinds fall through to the
// paragraph form.
func markupEntry(b layout.Block) string {
	switch b.Kind {
	case layout.KindTitle:
		return "# " + b.Text + "\n"
	case layout.KindHeading:
		return "## " + b.Text + "\n"
	case layout.KindSubheading:
		return "### " + b.Text + "\n"
	case layout.KindListItem:
		return "- " + b.Text
	default:
		return b.Text + "\n"
	}
}
