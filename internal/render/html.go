package render

import (
	"html"
	"strings"
)

// htmlHeader carries the print stylesheet: A4 page, centered title block,
// bold headings, regular body text. Chrome paginates on overflow.
const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 18mm 15mm; }
body { font-family: "DejaVu Sans", "Helvetica Neue", Arial, sans-serif; font-size: 12px; color: #111; }
.title { font-size: 16px; font-weight: bold; text-align: center; margin-bottom: 6px; }
.contact { font-size: 12px; text-align: center; margin-bottom: 10px; }
.heading { font-size: 14px; font-weight: bold; text-align: left; margin-top: 10px; margin-bottom: 4px; }
.body { font-size: 12px; text-align: left; line-height: 1.35; margin: 0; }
.spacer { height: 8px; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML serializes the document for the print engine. All text is escaped.
func (d Document) HTML() string {
	var b strings.Builder
	b.WriteString(htmlHeader)
	for _, block := range d.Blocks {
		switch block.Kind {
		case BlockTitle:
			writeDiv(&b, "title", block.Text)
		case BlockContact:
			writeDiv(&b, "contact", block.Text)
		case BlockHeading:
			writeDiv(&b, "heading", block.Text)
		case BlockBody:
			writeDiv(&b, "body", block.Text)
		case BlockSpacer:
			b.WriteString(`<div class="spacer"></div>` + "\n")
		}
	}
	b.WriteString(htmlFooter)
	return b.String()
}

func writeDiv(b *strings.Builder, class, text string) {
	b.WriteString(`<div class="` + class + `">` + html.EscapeString(text) + "</div>\n")
}
