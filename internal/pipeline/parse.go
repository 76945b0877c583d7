package pipeline

import (
	"strings"

	"github.com/alnah/go-doc2web/internal/layout"
)

// Header and list markers of the canonical markup grammar.
// Header prefixes are ordered longest first.
const (
	subheadingPrefix = "### "
	headingPrefix    = "## "
	titlePrefix      = "# "
	dashItemPrefix   = "- "
	starItemPrefix   = "* "
)

// groupState tracks whether the parser is inside a run of list items.
type groupState int

const (
	stateOutside groupState = iota
	stateInList
)

// Group is a half-open range [Start, End) of block indexes forming one list.
type Group struct {
	Start int
	End   int
}

// Parsed is the parser output. Blocks is the block sequence. Breaks holds the
// positions of line-break markers produced by blank lines: a break at p
// precedes Blocks[p], and p == len(Blocks) marks a trailing break. Groups
// holds the list groups exactly as the parser opened and closed them.
type Parsed struct {
	Blocks []layout.Block
	Breaks []int
	Groups []Group
}

// lineOutcome is what a single line contributes to the parse.
type lineOutcome struct {
	block      layout.Block
	isBreak    bool
	openGroup  bool
	closeGroup bool
}

// Parse reads canonical markup into blocks. Every line maps to exactly one
// outcome, so parsing never fails: malformed markers such as "#text" are
// paragraphs. Empty input yields an empty result.
func Parse(markup string) Parsed {
	var p Parsed

	state := stateOutside
	for _, line := range splitLines(markup) {
		var out lineOutcome
		state, out = step(state, strings.TrimSpace(line))

		if out.closeGroup {
			p.Groups[len(p.Groups)-1].End = len(p.Blocks)
		}
		if out.openGroup {
			p.Groups = append(p.Groups, Group{Start: len(p.Blocks)})
		}
		if out.isBreak {
			p.Breaks = append(p.Breaks, len(p.Blocks))
			continue
		}
		p.Blocks = append(p.Blocks, out.block)
	}

	if state == stateInList {
		p.Groups[len(p.Groups)-1].End = len(p.Blocks)
	}
	return p
}

// step classifies one trimmed line and folds it into the group state.
func step(state groupState, line string) (groupState, lineOutcome) {
	next, out := classify(line)
	out.closeGroup = state == stateInList && next == stateOutside
	out.openGroup = state == stateOutside && next == stateInList
	return next, out
}

// classify maps a trimmed line to its outcome and the group state it implies.
// Only list items keep a list group open.
func classify(line string) (groupState, lineOutcome) {
	switch {
	case line == "":
		return stateOutside, lineOutcome{isBreak: true}
	case strings.HasPrefix(line, subheadingPrefix):
		return stateOutside, blockOutcome(layout.KindSubheading, line[len(subheadingPrefix):])
	case strings.HasPrefix(line, headingPrefix):
		return stateOutside, blockOutcome(layout.KindHeading, line[len(headingPrefix):])
	case strings.HasPrefix(line, titlePrefix):
		return stateOutside, blockOutcome(layout.KindTitle, line[len(titlePrefix):])
	case strings.HasPrefix(line, dashItemPrefix), strings.HasPrefix(line, starItemPrefix):
		return stateInList, blockOutcome(layout.KindListItem, line[len(dashItemPrefix):])
	default:
		return stateOutside, blockOutcome(layout.KindParagraph, line)
	}
}

func blockOutcome(kind layout.Kind, text string) lineOutcome {
	return lineOutcome{block: layout.Block{Kind: kind, Text: text}}
}
