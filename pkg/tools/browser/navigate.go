package browser

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/playwright-community/playwright-go"

	"github.com/tcehjaava/webinteractiontools/pkg/config"
)

// Best-effort post-navigation selector waits give up after this long.
const waitForSelectorTimeoutMs = 5000

func newNavigateTool() mcp.Tool {
	return mcp.NewTool(
		"browser_navigate",
		mcp.WithDescription("Navigate the browser to a URL and report the resulting page metadata."),
		mcp.WithString("url",
			mcp.Description("Absolute http/https URL to navigate to"),
			mcp.Required(),
		),
		mcp.WithString("wait_until",
			mcp.Description("Navigation completion condition"),
			mcp.Enum("load", "domcontentloaded", "networkidle"),
			mcp.DefaultString("load"),
		),
		mcp.WithString("wait_for_selector",
			mcp.Description("Optional CSS selector to wait for after navigation; a timeout is logged, not fatal"),
		),
		mcp.WithNumber("timeout_ms",
			mcp.Description("Navigation timeout in milliseconds (defaults to the configured page timeout)"),
		),
	)
}

func (t *Toolset) handleNavigate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return nil, err
	}

	if config.IsInitialized() && !config.GetBrowser().IsURLAllowed(url) {
		return nil, fmt.Errorf("navigation to %q is blocked by the configured URL allowlist", url)
	}

	waitUntil := req.GetString("wait_until", "load")
	switch waitUntil {
	case "load", "domcontentloaded", "networkidle":
	default:
		return nil, fmt.Errorf("invalid wait_until %q (must be load, domcontentloaded, or networkidle)", waitUntil)
	}

	page, err := t.page()
	if err != nil {
		return nil, err
	}

	state := playwright.WaitUntilState(waitUntil)
	opts := playwright.PageGotoOptions{WaitUntil: &state}
	if timeout := req.GetFloat("timeout_ms", 0); timeout > 0 {
		opts.Timeout = playwright.Float(timeout)
	}

	t.log.Infof("navigating to %s (wait_until=%s)", url, waitUntil)
	if _, err := page.Goto(url, opts); err != nil {
		return nil, fmt.Errorf("navigation failed: %w", err)
	}

	if selector := req.GetString("wait_for_selector", ""); selector != "" {
		_, err := page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
			Timeout: playwright.Float(waitForSelectorTimeoutMs),
		})
		if err != nil {
			// Best effort: the page loaded, the marker just never showed
			t.log.Warnf("wait_for_selector %q timed out after navigation: %v", selector, err)
		}
	}

	info, err := getPageInfo(page)
	if err != nil {
		return nil, err
	}

	return mcp.NewToolResultText("Navigation complete.\n\n" + formatPageInfo(info)), nil
}
