package browser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PageInfo is a snapshot of document metadata and geometry.
type PageInfo struct {
	Title          string  `json:"title"`
	URL            string  `json:"url"`
	ScrollX        float64 `json:"scrollX"`
	ScrollY        float64 `json:"scrollY"`
	ScrollWidth    int     `json:"scrollWidth"`
	ScrollHeight   int     `json:"scrollHeight"`
	ViewportWidth  int     `json:"viewportWidth"`
	ViewportHeight int     `json:"viewportHeight"`
	Description    string  `json:"description"`
	Keywords       string  `json:"keywords"`
	Author         string  `json:"author"`
	Viewport       string  `json:"viewport"`
}

func getPageInfo(page evaluator) (*PageInfo, error) {
	raw, err := page.Evaluate(pageInfoScript)
	if err != nil {
		return nil, fmt.Errorf("failed to read page metadata: %w", err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("unserializable page metadata: %w", err)
	}

	var info PageInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("malformed page metadata: %w", err)
	}
	return &info, nil
}

// formatPageInfo renders metadata as the text block returned to the agent.
func formatPageInfo(info *PageInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Title: %s\n", info.Title)
	fmt.Fprintf(&b, "URL: %s\n", info.URL)
	fmt.Fprintf(&b, "Viewport: %dx%d\n", info.ViewportWidth, info.ViewportHeight)
	fmt.Fprintf(&b, "Page size: %dx%d\n", info.ScrollWidth, info.ScrollHeight)
	fmt.Fprintf(&b, "Scroll position: %.0f,%.0f", info.ScrollX, info.ScrollY)

	if info.Description != "" {
		fmt.Fprintf(&b, "\nDescription: %s", info.Description)
	}
	if info.Keywords != "" {
		fmt.Fprintf(&b, "\nKeywords: %s", info.Keywords)
	}
	if info.Author != "" {
		fmt.Fprintf(&b, "\nAuthor: %s", info.Author)
	}
	if info.Viewport != "" {
		fmt.Fprintf(&b, "\nViewport meta: %s", info.Viewport)
	}

	return b.String()
}
