package browser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// CleanedHTML is the output of cleanHTML: noise-stripped markup plus a flag
// telling whether the length cap cut it short.
type CleanedHTML struct {
	HTML      string
	Truncated bool
}

// cleanHTML parses raw markup and re-renders it without scripts, styles, and
// other noise, preserving only the attributes useful for targeting elements.
// Output is capped at maxLength characters of content.
func cleanHTML(rawHTML string, maxLength int) (*CleanedHTML, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	w := &cleanWriter{max: maxLength}
	w.walk(doc, 0)

	return &CleanedHTML{
		HTML:      w.out.String(),
		Truncated: w.truncated,
	}, nil
}

type cleanWriter struct {
	out       strings.Builder
	length    int
	max       int
	truncated bool
}

func (w *cleanWriter) walk(n *html.Node, depth int) {
	if w.truncated {
		return
	}

	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		w.writeText(n.Data)
		return
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if skippedTag(tag) {
			return
		}
		w.writeElement(n, tag, depth)
		return
	}

	// Document and fragment nodes: descend
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, depth)
	}
}

func (w *cleanWriter) writeText(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}

	if w.length+len(text) > w.max {
		remaining := w.max - w.length
		if remaining > 0 {
			// Back off to a rune boundary so the cut never emits
			// invalid UTF-8
			for remaining > 0 && !utf8.RuneStart(text[remaining]) {
				remaining--
			}
			w.out.WriteString(text[:remaining])
		}
		w.out.WriteString("...")
		w.length = w.max
		w.truncated = true
		return
	}

	w.out.WriteString(text)
	w.length += len(text)
}

func (w *cleanWriter) writeElement(n *html.Node, tag string, depth int) {
	if depth > 0 && blockTag(tag) {
		w.out.WriteString("\n")
		w.out.WriteString(strings.Repeat("  ", depth))
	}

	w.out.WriteString("<")
	w.out.WriteString(tag)
	for _, attr := range n.Attr {
		if keepAttribute(tag, strings.ToLower(attr.Key)) {
			piece := fmt.Sprintf(` %s="%s"`, attr.Key, html.EscapeString(attr.Val))
			w.out.WriteString(piece)
			w.length += len(piece)
		}
	}
	w.out.WriteString(">")
	w.length += len(tag) + 2

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, depth+1)
	}

	if voidTag(tag) {
		return
	}
	if blockTag(tag) {
		w.out.WriteString("\n")
		w.out.WriteString(strings.Repeat("  ", depth))
	}
	fmt.Fprintf(&w.out, "</%s>", tag)
	w.length += len(tag) + 3
}

func skippedTag(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "iframe", "embed", "object", "svg":
		return true
	}
	return false
}

func blockTag(tag string) bool {
	switch tag {
	case "div", "p", "section", "article", "header", "footer", "nav", "main",
		"aside", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "li",
		"table", "tr", "td", "th", "form", "fieldset", "blockquote", "pre":
		return true
	}
	return false
}

func voidTag(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

// keepAttribute keeps identity and targeting attributes and drops the rest.
func keepAttribute(tag, attr string) bool {
	switch attr {
	case "id", "class", "role", "aria-label", "aria-describedby":
		return true
	}
	if strings.HasPrefix(attr, "data-") {
		return true
	}

	switch tag {
	case "a":
		return attr == "href" || attr == "target"
	case "img":
		return attr == "src" || attr == "alt"
	case "input", "textarea", "select":
		return attr == "name" || attr == "type" || attr == "placeholder" || attr == "value"
	case "button":
		return attr == "type" || attr == "name"
	case "form":
		return attr == "action" || attr == "method"
	}
	return false
}
