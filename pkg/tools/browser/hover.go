package browser

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func newHoverTool() mcp.Tool {
	return mcp.NewTool(
		"browser_hover",
		mcp.WithDescription("Hover over an element located by visible text or by CSS selector, dispatching the full pointer event sequence."),
		mcp.WithString("text",
			mcp.Description("Visible text identifying the element (mutually exclusive with selector)"),
		),
		mcp.WithNumber("occurrence",
			mcp.Description("1-based occurrence of the text to hover when it matches more than once"),
		),
		mcp.WithString("selector",
			mcp.Description("CSS selector for the element (mutually exclusive with text)"),
		),
	)
}

func (t *Toolset) handleHover(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	selector := req.GetString("selector", "")
	if (text == "") == (selector == "") {
		return nil, fmt.Errorf("exactly one of text or selector is required")
	}

	page, err := t.page()
	if err != nil {
		return nil, err
	}

	var res *resolveResult
	query := text
	if text != "" {
		occurrence := req.GetInt("occurrence", 1)
		res, err = resolveText(page, text, occurrence, "hover")
	} else {
		query = selector
		res, err = resolveSelector(page, selector, "hover")
	}
	if err != nil {
		t.log.Warnf("hover on %q failed: %v", query, err)
		return nil, err
	}

	return mcp.NewToolResultText(formatOutcome("Hovered over", query, outcomeFromResult(res))), nil
}
