package pipeline

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedRichTags are the only elements kept by SanitizeRich.
var allowedRichTags = map[atom.Atom]bool{
	atom.B:      true,
	atom.I:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.U:      true,
	atom.Br:     true,
}

// droppedContentTags have their text content removed along with the tag.
var droppedContentTags = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Noscript: true,
	atom.Textarea: true,
	atom.Title:    true,
}

// SanitizeRich reduces an HTML fragment to plain text plus b, i, em, strong,
// u and br. Every attribute is dropped; disallowed tags are unwrapped, except
// script-like elements whose content is removed entirely. The output is
// balanced: unmatched end tags are dropped and open tags are closed.
func SanitizeRich(s string) string {
	if s == "" {
		return ""
	}

	var buf strings.Builder
	z := xhtml.NewTokenizer(strings.NewReader(s))
	skipDepth := 0
	var open []atom.Atom

	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			// io.EOF or malformed input: keep what was accepted so far.
			closeTags(&buf, open)
			return buf.String()

		case xhtml.TextToken:
			if skipDepth == 0 {
				buf.WriteString(html.EscapeString(string(z.Text())))
			}

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if droppedContentTags[a] {
				if tt == xhtml.StartTagToken {
					skipDepth++
				}
				continue
			}
			if skipDepth > 0 || !allowedRichTags[a] {
				continue
			}
			if a == atom.Br {
				buf.WriteString("<br>")
				continue
			}
			buf.WriteString("<" + a.String() + ">")
			open = append(open, a)

		case xhtml.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if droppedContentTags[a] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if skipDepth > 0 || !allowedRichTags[a] || a == atom.Br {
				continue
			}
			i := lastOpen(open, a)
			if i < 0 {
				continue
			}
			// Close anything opened inside a first, so <i><b>x</i> nests.
			closeTags(&buf, open[i:])
			open = open[:i]
		}
	}
}

// lastOpen returns the index of the innermost open a, or -1.
func lastOpen(open []atom.Atom, a atom.Atom) int {
	for i := len(open) - 1; i >= 0; i-- {
		if open[i] == a {
			return i
		}
	}
	return -1
}

// closeTags writes end tags for open, innermost first.
func closeTags(buf *strings.Builder, open []atom.Atom) {
	for i := len(open) - 1; i >= 0; i-- {
		buf.WriteString("</" + open[i].String() + ">")
	}
}
