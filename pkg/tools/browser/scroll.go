package browser

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func newScrollTool() mcp.Tool {
	return mcp.NewTool(
		"browser_scroll",
		mcp.WithDescription("Scroll the page by direction and amount, or scroll a text match into view."),
		mcp.WithString("direction",
			mcp.Description("Scroll direction (ignored when to_text is given)"),
			mcp.Enum("up", "down", "left", "right"),
			mcp.DefaultString("down"),
		),
		mcp.WithNumber("amount",
			mcp.Description("Scroll distance in pixels; defaults to one viewport"),
		),
		mcp.WithString("to_text",
			mcp.Description("Scroll the element containing this text into view instead of scrolling by distance"),
		),
		mcp.WithNumber("occurrence",
			mcp.Description("1-based occurrence of to_text to target when it matches more than once"),
		),
	)
}

func (t *Toolset) handleScroll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := t.page()
	if err != nil {
		return nil, err
	}

	if toText := req.GetString("to_text", ""); toText != "" {
		occurrence := req.GetInt("occurrence", 1)

		res, err := resolveText(page, toText, occurrence, "scroll")
		if err != nil {
			return nil, err
		}

		text := fmt.Sprintf("Scrolled to %q (match %d of %d)\nTarget: %s\nScroll position: %.0f,%.0f",
			toText, occurrence, res.Total, describeElement(res.Descriptor), res.ScrollX, res.ScrollY)
		return mcp.NewToolResultText(text), nil
	}

	direction := req.GetString("direction", "down")
	amount := req.GetFloat("amount", 0)
	if amount <= 0 {
		width, height, _ := sessionDefaults()
		if direction == "left" || direction == "right" {
			amount = float64(width)
		} else {
			amount = float64(height)
		}
	}

	var dx, dy float64
	switch direction {
	case "up":
		dy = -amount
	case "down":
		dy = amount
	case "left":
		dx = -amount
	case "right":
		dx = amount
	default:
		return nil, fmt.Errorf("invalid direction %q (must be up, down, left, or right)", direction)
	}

	raw, err := page.Evaluate(scrollByScript, map[string]interface{}{"dx": dx, "dy": dy})
	if err != nil {
		return nil, fmt.Errorf("scroll failed: %w", err)
	}

	res, err := parseResolveResult(raw)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Scrolled %s by %.0fpx\nScroll position: %.0f,%.0f",
		direction, amount, res.ScrollX, res.ScrollY)
	return mcp.NewToolResultText(text), nil
}
