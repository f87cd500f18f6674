// Package browser implements the browser automation tools exposed by the
// webtools MCP server.
//
// All tools share a single lazily-launched Playwright Chromium session and
// funnel element resolution through one in-page script: free-text queries are
// matched against the DOM (deepest match first), non-interactive matches are
// promoted to their nearest clickable descendant or ancestor, and the actual
// click or hover is synthesized through a chain of strategies (native click,
// synthetic pointer events, bare event dispatch). CSS-selector flows add a
// bounded retry loop with an extended visibility check.
//
// The resolution script executes atomically inside the page. Only plain data
// crosses the evaluate boundary in either direction; DOM handles never leave
// the page.
package browser
