package render

import "strings"

// wrapWidth is the fixed column width body text is wrapped to.
const wrapWidth = 85

// BlockKind tags how a block of text is styled on the page.
type BlockKind string

const (
	// BlockTitle is the bold, centered document title.
	BlockTitle BlockKind = "title"
	// BlockContact is the centered, regular-weight contact line.
	BlockContact BlockKind = "contact"
	// BlockHeading is a bold, left-aligned section heading.
	BlockHeading BlockKind = "heading"
	// BlockBody is a left-aligned, word-wrapped body line.
	BlockBody BlockKind = "body"
	// BlockSpacer inserts small vertical spacing.
	BlockSpacer BlockKind = "spacer"
)

// Block is one page-local unit of styled text.
type Block struct {
	Kind BlockKind
	Text string
}

// Document is an ordered sequence of blocks derived from normalized resume
// text. Pagination is left to the rendering engine.
type Document struct {
	Blocks []Block
}

// BuildDocument lays out normalized resume content for the given display
// name. The first content line is treated as the contact line; any later
// line carrying the bold-marker pair becomes a heading with the markers
// stripped, every other non-empty line is wrapped to the fixed column width,
// and blank lines turn into spacers.
func BuildDocument(content, name string) Document {
	doc := Document{
		Blocks: []Block{{Kind: BlockTitle, Text: name + "'s Resume"}},
	}

	if content == "" {
		return doc
	}

	lines := strings.Split(content, "\n")
	doc.Blocks = append(doc.Blocks, Block{Kind: BlockContact, Text: lines[0]})
	lines = lines[1:]

	for _, line := range lines {
		switch {
		case strings.Contains(line, "**"):
			text := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockHeading, Text: text})
		case strings.TrimSpace(line) == "":
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockSpacer})
		default:
			for _, segment := range wrap(line, wrapWidth) {
				doc.Blocks = append(doc.Blocks, Block{Kind: BlockBody, Text: segment})
			}
		}
	}
	return doc
}

// wrap greedily word-wraps s into segments of at most width characters.
// Words longer than the width get a segment of their own.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var segments []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		segments = append(segments, current)
		current = word
	}
	return append(segments, current)
}
