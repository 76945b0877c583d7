// Package layout holds the in-memory representation of an extracted document:
// an ordered sequence of typed blocks, or markup text that an extraction path
// already produced in canonical form.
package layout

// Kind classifies a block. Values match the "type" field of the OCR layout
// payload, so a decoded block keeps whatever kind the service reported.
type Kind string

// Recognized block kinds. Any other value is treated as KindParagraph.
const (
	KindTitle      Kind = "title"
	KindHeading    Kind = "heading"
	KindSubheading Kind = "subheading"
	KindParagraph  Kind = "paragraph"
	KindListItem   Kind = "list_item"
)

// Known reports whether k is one of the recognized kinds.
func (k Kind) Known() bool {
	switch k {
	case KindTitle, KindHeading, KindSubheading, KindParagraph, KindListItem:
		return true
	}
	return false
}

// Block is the atomic unit of document content.
type Block struct {
	Kind Kind   `json:"type"`
	Text string `json:"text"`
}

// Document is an ordered sequence of blocks in top-to-bottom reading order.
type Document []Block

// Extraction is the output of the extraction stage. It carries either a
// structured document or pre-formatted markup text, never both.
type Extraction struct {
	text         string
	doc          Document
	preformatted bool
}

// FromDocument wraps a structured document.
func FromDocument(doc Document) Extraction {
	return Extraction{doc: doc}
}

// FromText wraps markup text that is already in canonical form.
func FromText(text string) Extraction {
	return Extraction{text: text, preformatted: true}
}

// IsPreformatted reports whether the extraction carries markup text.
func (e Extraction) IsPreformatted() bool {
	return e.preformatted
}

// Text returns the pre-formatted markup text ("" for structured extractions).
func (e Extraction) Text() string {
	return e.text
}

// Document returns the structured document (nil for pre-formatted extractions).
func (e Extraction) Document() Document {
	return e.doc
}
