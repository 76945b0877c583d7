// Package pipeline implements the deterministic half of the document-to-page
// conversion:
//   - Normalize: layout blocks (or pre-formatted text) to canonical markup
//   - Parse: canonical markup back to blocks, line breaks and list groups
//   - Renderer: parsed blocks to an HTML fragment wrapped in a page skeleton
//   - MarkdownDecoder: free-form Markdown from OCR models to layout blocks
//
// The canonical markup grammar is deliberately small: "# ", "## " and "### "
// headers, "- " or "* " list items, blank lines as separators, and every other
// line as a paragraph. Parse and Renderer agree on list group boundaries by
// construction: the renderer consumes the groups the parser recorded.
//
// Nothing in this package performs I/O or depends on the network, so two
// renderings of the same markup are byte-identical.
package pipeline
