package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func newListElementsTool() mcp.Tool {
	return mcp.NewTool(
		"browser_list_elements",
		mcp.WithDescription("List the visible interactable elements on the page (links, buttons, inputs, elements with interactive roles), optionally scoped to a container."),
		mcp.WithString("selector",
			mcp.Description("Optional CSS selector scoping the enumeration to a container"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of elements to return"),
		),
	)
}

type listResult struct {
	Status   string              `json:"status"`
	Total    int                 `json:"total"`
	Elements []ElementDescriptor `json:"elements"`
}

func parseListResult(raw interface{}) (*listResult, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("unserializable enumeration result: %w", err)
	}

	var res listResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("malformed enumeration result: %w", err)
	}
	return &res, nil
}

func (t *Toolset) handleListElements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	selector := req.GetString("selector", "")
	limit := req.GetInt("limit", DefaultListLimit)
	if limit <= 0 {
		limit = DefaultListLimit
	}

	page, err := t.page()
	if err != nil {
		return nil, err
	}

	raw, err := page.Evaluate(listElementsScript, map[string]interface{}{
		"selector":  selector,
		"limit":     limit,
		"textLimit": descriptorTextLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("element enumeration failed: %w", err)
	}

	res, err := parseListResult(raw)
	if err != nil {
		return nil, err
	}

	if res.Status == "not_found" {
		return nil, &NotFoundError{Query: selector}
	}

	if res.Total == 0 {
		return mcp.NewToolResultText("No interactable elements found."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d interactable element(s)", res.Total)
	if res.Total > len(res.Elements) {
		fmt.Fprintf(&b, ", showing first %d", len(res.Elements))
	}
	b.WriteString(":\n")
	for i, el := range res.Elements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, describeElement(el))
	}

	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
