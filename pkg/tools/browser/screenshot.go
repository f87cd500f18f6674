package browser

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/playwright-community/playwright-go"

	"github.com/tcehjaava/webinteractiontools/pkg/media"
)

func newScreenshotTool() mcp.Tool {
	return mcp.NewTool(
		"browser_screenshot",
		mcp.WithDescription("Capture a screenshot of the current page and return it as an image, downsized to the vision provider's dimension limit."),
		mcp.WithBoolean("full_page",
			mcp.Description("Capture the full scrollable page instead of the viewport"),
		),
		mcp.WithString("provider",
			mcp.Description("Vision provider the image is destined for (claude, gemini, openai); controls the maximum dimensions"),
		),
	)
}

func (t *Toolset) handleScreenshot(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fullPage := req.GetBool("full_page", false)
	provider := req.GetString("provider", imageProvider())

	page, err := t.page()
	if err != nil {
		return nil, err
	}

	data, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(fullPage),
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}

	fit, err := media.FitToProvider(data, provider)
	if err != nil {
		return nil, err
	}

	summary := fmt.Sprintf("Screenshot captured: %dx%d", fit.Width, fit.Height)
	if fit.Resized {
		summary += fmt.Sprintf(" (resized from %dx%d to fit provider limits)",
			fit.OriginalWidth, fit.OriginalHeight)
	}
	t.log.Debugf("%s, %d bytes", summary, len(fit.Data))

	encoded := base64.StdEncoding.EncodeToString(fit.Data)
	return mcp.NewToolResultImage(summary, encoded, "image/png"), nil
}
