package content

import (
	"html"
	"strings"
)

// RenderHTML renders a Document to the read-optimized HTML cache stored in
// articles.content. Deterministic: same document, same output.
func RenderHTML(doc Document) string {
	var sb strings.Builder

	for _, b := range doc.Blocks {
		switch b.Type {
		case BlockH2:
			if b.Value == "" {
				continue
			}
			sb.WriteString("<h2>" + html.EscapeString(b.Value) + "</h2>\n")
		case BlockH3:
			if b.Value == "" {
				continue
			}
			sb.WriteString("<h3>" + html.EscapeString(b.Value) + "</h3>\n")
		case BlockText:
			// One paragraph per non-empty line.
			for _, line := range strings.Split(b.Value, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				sb.WriteString("<p>" + html.EscapeString(line) + "</p>\n")
			}
		case BlockImage:
			if b.Value == "" {
				continue
			}
			sb.WriteString(`<div class="article-image"><img src="` + html.EscapeString(b.Value) +
				`" alt="` + html.EscapeString(b.Alt) + `" loading="lazy"></div>` + "\n")
		case BlockVideo:
			if b.Value == "" {
				continue
			}
			sb.WriteString(`<div class="article-video"><video src="` + html.EscapeString(b.Value) +
				`" controls></video></div>` + "\n")
		}
	}

	if len(doc.FAQ) > 0 {
		sb.WriteString(`<section class="article-faq"><h2>FAQ</h2>` + "\n")
		for _, f := range doc.FAQ {
			if f.Question == "" {
				continue
			}
			sb.WriteString("<h3>" + html.EscapeString(f.Question) + "</h3>\n")
			sb.WriteString("<p>" + html.EscapeString(f.Response) + "</p>\n")
		}
		sb.WriteString("</section>\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// WordCount counts the words carried by text and heading blocks.
func WordCount(doc Document) int {
	count := 0
	for _, b := range doc.Blocks {
		switch b.Type {
		case BlockText, BlockH2, BlockH3:
			count += len(strings.Fields(b.Value))
		}
	}
	return count
}
