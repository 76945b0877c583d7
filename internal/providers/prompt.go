package providers

import "strings"

// promptTemplate is the fixed instruction sent to generative renderers.
const promptTemplate = `Convert the following Markdown content into a beautiful, modern HTML webpage.
The webpage should include:
- A professional and clean design
- Responsive CSS styling
- Proper semantic HTML5 structure
- A color scheme that is visually appealing
- Smooth typography and spacing

Markdown content:
{markdown}

Generate a complete, single-file HTML page with embedded CSS.`

// BuildPrompt embeds markup into the instruction template.
func BuildPrompt(markup string) string {
	return strings.Replace(promptTemplate, "{markdown}", markup, 1)
}

// StripFences removes a surrounding Markdown code fence, which chat models
// often wrap generated pages in.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
