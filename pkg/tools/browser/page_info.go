package browser

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func newPageInfoTool() mcp.Tool {
	return mcp.NewTool(
		"browser_page_info",
		mcp.WithDescription("Report the current page's title, URL, scroll and viewport geometry, and meta tags."),
	)
}

func (t *Toolset) handlePageInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := t.page()
	if err != nil {
		return nil, err
	}

	info, err := getPageInfo(page)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText(formatPageInfo(info)), nil
}
