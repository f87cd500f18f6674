package browser

import "github.com/mark3labs/mcp-go/server"

// Register adds every browser tool to the MCP server.
func (t *Toolset) Register(srv *server.MCPServer) {
	srv.AddTool(newNavigateTool(), t.handleNavigate)
	srv.AddTool(newScreenshotTool(), t.handleScreenshot)
	srv.AddTool(newScrollTool(), t.handleScroll)
	srv.AddTool(newClickTool(), t.handleClick)
	srv.AddTool(newHoverTool(), t.handleHover)
	srv.AddTool(newFillTool(), t.handleFill)
	srv.AddTool(newExtractHTMLTool(), t.handleExtractHTML)
	srv.AddTool(newEvaluateTool(), t.handleEvaluate)
	srv.AddTool(newListElementsTool(), t.handleListElements)
	srv.AddTool(newPageInfoTool(), t.handlePageInfo)
}
