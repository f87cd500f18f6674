package browser

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func newClickTool() mcp.Tool {
	return mcp.NewTool(
		"browser_click",
		mcp.WithDescription("Click an element located by visible text or by CSS selector. Text matches prefer the deepest element and promote to the nearest clickable target."),
		mcp.WithString("text",
			mcp.Description("Visible text identifying the element (mutually exclusive with selector)"),
		),
		mcp.WithNumber("occurrence",
			mcp.Description("1-based occurrence of the text to click when it matches more than once"),
		),
		mcp.WithString("selector",
			mcp.Description("CSS selector for the element (mutually exclusive with text)"),
		),
	)
}

func (t *Toolset) handleClick(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
		res, err = resolveText(page, text, occurrence, "click")
	} else {
		query = selector
		res, err = resolveSelector(page, selector, "click")
	}
	if err != nil {
		t.log.Warnf("click on %q failed: %v", query, err)
		return nil, err
	}

	outcome := outcomeFromResult(res)
	t.log.Infof("clicked %s via %s", describeElement(outcome.Descriptor), outcome.Strategy)

	return mcp.NewToolResultText(formatOutcome("Clicked", query, outcome)), nil
}
