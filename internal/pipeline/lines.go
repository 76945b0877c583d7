package pipeline

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// splitLines normalizes line endings and splits markup into lines.
// Empty input has no lines.
func splitLines(markup string) []string {
	if markup == "" {
		return nil
	}
	return strings.Split(crlfOrCR.ReplaceAllString(markup, "\n"), "\n")
}
