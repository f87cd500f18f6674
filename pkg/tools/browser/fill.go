package browser

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func newFillTool() mcp.Tool {
	return mcp.NewTool(
		"browser_fill",
		mcp.WithDescription("Fill an input or textarea located by CSS selector, optionally pressing Enter afterwards."),
		mcp.WithString("selector",
			mcp.Description("CSS selector for the input element"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("Text to fill into the element"),
			mcp.Required(),
		),
		mcp.WithBoolean("press_enter",
			mcp.Description("Press Enter after filling (submits most forms)"),
		),
	)
}

func (t *Toolset) handleFill(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	selector, err := req.RequireString("selector")
	if err != nil {
		return nil, err
	}
	value, err := req.RequireString("value")
	if err != nil {
		return nil, err
	}

	page, err := t.page()
	if err != nil {
		return nil, err
	}

	// Wait for the element through the retry loop before filling so a
	// hidden or disabled input fails with a precise error instead of a
	// generic fill timeout.
	res, err := resolveSelector(page, selector, "inspect")
	if err != nil {
		return nil, err
	}

	if err := page.Fill(selector, value); err != nil {
		return nil, fmt.Errorf("fill failed: %w", err)
	}

	result := fmt.Sprintf("Filled %s with %q", describeElement(res.Descriptor), value)
	if req.GetBool("press_enter", false) {
		if err := page.Keyboard().Press("Enter"); err != nil {
			return nil, fmt.Errorf("failed to press Enter: %w", err)
		}
		result += " and pressed Enter"
	}

	t.log.Infof("filled %q", selector)
	return mcp.NewToolResultText(result), nil
}
