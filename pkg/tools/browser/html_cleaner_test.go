package browser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanHTMLStripsNoise(t *testing.T) {
	raw := `<html><head><script>alert(1)</script><style>.x{}</style></head>
	<body><div id="main"><p>Hello</p><noscript>nojs</noscript><iframe src="x"></iframe></div></body></html>`

	cleaned, err := cleanHTML(raw, 1000)
	require.NoError(t, err)

	assert.Contains(t, cleaned.HTML, "Hello")
	assert.Contains(t, cleaned.HTML, `<div id="main">`)
	assert.NotContains(t, cleaned.HTML, "script")
	assert.NotContains(t, cleaned.HTML, "alert")
	assert.NotContains(t, cleaned.HTML, ".x{}")
	assert.NotContains(t, cleaned.HTML, "nojs")
	assert.NotContains(t, cleaned.HTML, "iframe")
	assert.False(t, cleaned.Truncated)
}

func TestCleanHTMLPreservesTargetingAttributes(t *testing.T) {
	raw := `<body>
	<a href="/about" target="_blank" style="color:red" onmouseover="x()">About</a>
	<input type="text" name="q" placeholder="Search" tabindex="3">
	<button type="submit" class="btn" data-testid="go">Go</button>
	</body>`

	cleaned, err := cleanHTML(raw, 1000)
	require.NoError(t, err)

	assert.Contains(t, cleaned.HTML, `href="/about"`)
	assert.Contains(t, cleaned.HTML, `target="_blank"`)
	assert.Contains(t, cleaned.HTML, `name="q"`)
	assert.Contains(t, cleaned.HTML, `placeholder="Search"`)
	assert.Contains(t, cleaned.HTML, `class="btn"`)
	assert.Contains(t, cleaned.HTML, `data-testid="go"`)

	// Styling and handler attributes are noise
	assert.NotContains(t, cleaned.HTML, "style=")
	assert.NotContains(t, cleaned.HTML, "onmouseover")
	assert.NotContains(t, cleaned.HTML, "tabindex")
}

func TestCleanHTMLTruncates(t *testing.T) {
	raw := "<body><p>" + strings.Repeat("a", 200) + "</p></body>"

	cleaned, err := cleanHTML(raw, 10)
	require.NoError(t, err)

	assert.True(t, cleaned.Truncated)
	assert.Contains(t, cleaned.HTML, "...")
}

func TestCleanHTMLTruncatesOnRuneBoundary(t *testing.T) {
	raw := "<body><p>" + strings.Repeat("é", 100) + "</p></body>"

	// Walk caps that land the cut both on and between the 2-byte runes;
	// no cut may produce invalid UTF-8
	for max := 30; max <= 48; max++ {
		cleaned, err := cleanHTML(raw, max)
		require.NoError(t, err)
		assert.True(t, cleaned.Truncated)
		assert.True(t, utf8.ValidString(cleaned.HTML), "max=%d produced invalid UTF-8", max)
	}
}

func TestCleanHTMLCountsAttributeBytes(t *testing.T) {
	longID := strings.Repeat("x", 120)
	raw := `<body><div id="` + longID + `">first</div><p>second</p></body>`

	cleaned, err := cleanHTML(raw, 100)
	require.NoError(t, err)

	// The kept id attribute alone exceeds the cap, so the text after it
	// must be what triggers truncation
	assert.True(t, cleaned.Truncated)
	assert.NotContains(t, cleaned.HTML, "second")
}

func TestCleanHTMLVoidElements(t *testing.T) {
	raw := `<body><p>a<br>b</p><img src="/x.png" alt="pic"></body>`

	cleaned, err := cleanHTML(raw, 1000)
	require.NoError(t, err)

	assert.Contains(t, cleaned.HTML, "<br>")
	assert.NotContains(t, cleaned.HTML, "</br>")
	assert.Contains(t, cleaned.HTML, `<img src="/x.png" alt="pic">`)
	assert.NotContains(t, cleaned.HTML, "</img>")
}

func TestCleanHTMLEscapesAttributeValues(t *testing.T) {
	raw := `<body><div id="a&quot;b">x</div></body>`

	cleaned, err := cleanHTML(raw, 1000)
	require.NoError(t, err)
	assert.Contains(t, cleaned.HTML, "&#34;")
}
