package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func newEvaluateTool() mcp.Tool {
	return mcp.NewTool(
		"browser_evaluate",
		mcp.WithDescription("Execute JavaScript in the page context and return the JSON-serialized result."),
		mcp.WithString("code",
			mcp.Description("JavaScript expression or arrow function body to evaluate"),
			mcp.Required(),
		),
		mcp.WithNumber("timeout_ms",
			mcp.Description("Maximum milliseconds to wait for the result; unbounded when omitted"),
		),
	)
}

// evaluateWithTimeout bounds how long the caller waits for a result. The
// dispatched script itself is not cancellable once it is inside the page; on
// timeout it keeps running there and only the tool call fails.
func evaluateWithTimeout(page evaluator, code string, timeoutMs float64) (interface{}, error) {
	if timeoutMs <= 0 {
		return page.Evaluate(code)
	}

	type result struct {
		raw interface{}
		err error
	}
	ch := make(chan result, 1)
	go func() {
		raw, err := page.Evaluate(code)
		ch <- result{raw, err}
	}()

	select {
	case r := <-ch:
		return r.raw, r.err
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return nil, fmt.Errorf("evaluation timed out after %.0fms", timeoutMs)
	}
}

func (t *Toolset) handleEvaluate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return nil, err
	}

	page, err := t.page()
	if err != nil {
		return nil, err
	}

	t.log.Debugf("evaluating %d bytes of JavaScript", len(code))
	raw, err := evaluateWithTimeout(page, code, req.GetFloat("timeout_ms", 0))
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	if raw == nil {
		return mcp.NewToolResultText("undefined"), nil
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		// Non-serializable results still have a printable form
		return mcp.NewToolResultText(fmt.Sprintf("%v", raw)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
