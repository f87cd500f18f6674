package browser

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func newExtractHTMLTool() mcp.Tool {
	return mcp.NewTool(
		"browser_extract_html",
		mcp.WithDescription("Extract cleaned HTML from the page, a CSS selector match, or an element located by visible text. Scripts, styles, and non-targeting attributes are stripped."),
		mcp.WithString("selector",
			mcp.Description("CSS selector scoping the extraction (mutually exclusive with text)"),
		),
		mcp.WithString("text",
			mcp.Description("Visible text locating the element to extract (mutually exclusive with selector)"),
		),
		mcp.WithNumber("occurrence",
			mcp.Description("1-based occurrence of the text to extract when it matches more than once"),
		),
		mcp.WithNumber("max_length",
			mcp.Description("Maximum characters of cleaned content before truncation"),
		),
	)
}

func (t *Toolset) handleExtractHTML(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	selector := req.GetString("selector", "")
	text := req.GetString("text", "")
	if selector != "" && text != "" {
		return nil, fmt.Errorf("selector and text are mutually exclusive")
	}

	maxLength := req.GetInt("max_length", DefaultMaxHTMLLength)
	if maxLength <= 0 {
		maxLength = DefaultMaxHTMLLength
	}

	page, err := t.page()
	if err != nil {
		return nil, err
	}

	var rawHTML string
	switch {
	case text != "":
		res, err := resolveText(page, text, req.GetInt("occurrence", 1), "html")
		if err != nil {
			return nil, err
		}
		rawHTML = res.HTML
	case selector != "":
		res, err := resolveSelector(page, selector, "html")
		if err != nil {
			return nil, err
		}
		rawHTML = res.HTML
	default:
		rawHTML, err = page.Content()
		if err != nil {
			return nil, fmt.Errorf("failed to read page content: %w", err)
		}
	}

	cleaned, err := cleanHTML(rawHTML, maxLength)
	if err != nil {
		return nil, err
	}

	out := cleaned.HTML
	if cleaned.Truncated {
		out += fmt.Sprintf("\n\n[Content truncated at %d characters]", maxLength)
	}

	return mcp.NewToolResultText(out), nil
}
