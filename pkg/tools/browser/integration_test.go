package browser

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcehjaava/webinteractiontools/pkg/logging"
)

// newIntegrationPage launches a real headless browser. These tests exercise
// the in-page resolver against actual DOM semantics and are skipped in
// short mode.
func newIntegrationPage(t *testing.T) playwright.Page {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser integration test in short mode")
	}

	log, _ := logging.NewLogger("browser-integration-test")
	session := NewSession(log)
	t.Cleanup(func() { _ = session.Close() })

	page, err := session.GetPage(true)
	require.NoError(t, err)
	return page
}

func setContent(t *testing.T, page playwright.Page, html string) {
	t.Helper()
	require.NoError(t, page.SetContent(html))
}

func TestIntegrationSelfInteractableShortcut(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<button id="buy-btn">Buy</button>`)

	res, err := resolveText(page, "Buy", 1, "click")
	require.NoError(t, err)

	assert.Equal(t, "button", res.Descriptor.Tag)
	assert.Equal(t, "buy-btn", res.Descriptor.ID)
	assert.False(t, res.BestEffort)
}

func TestIntegrationAncestorPromotion(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<div role="button" id="outer"><span>Buy</span></div>`)

	res, err := resolveText(page, "Buy", 1, "click")
	require.NoError(t, err)

	// The span carries the text but the div carries the role
	assert.Equal(t, "div", res.Descriptor.Tag)
	assert.Equal(t, "outer", res.Descriptor.ID)
	assert.False(t, res.BestEffort)
}

func TestIntegrationOccurrenceSemantics(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<ul>
		<li>Item one</li>
		<li>Item two</li>
		<li>Item three</li>
	</ul>`)

	res, err := resolveText(page, "Item", 2, "inspect")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, "Item two", res.Descriptor.Text)

	_, err = resolveText(page, "Item", 4, "inspect")
	var outOfRange *OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 3, outOfRange.Total)

	_, err = resolveText(page, "Item", 0, "inspect")
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 0, outOfRange.Requested)

	_, err = resolveText(page, "Zebra", 1, "inspect")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestIntegrationDepthSortPrefersDeepest(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<div id="shallow">Price
		<div><div><span id="deep">Price</span></div></div>
	</div>`)

	res, err := resolveText(page, "Price", 1, "inspect")
	require.NoError(t, err)
	assert.Equal(t, "deep", res.Descriptor.ID)
}

func TestIntegrationScriptContentIgnored(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<div id="real">needle</div>
		<script type="text/template">needle needle</script>`)

	res, err := resolveText(page, "needle", 1, "inspect")
	require.NoError(t, err)
	assert.Equal(t, "real", res.Descriptor.ID)
	assert.Equal(t, 1, res.Total)
}

func TestIntegrationClickFiresHandler(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<button id="go" onclick="document.getElementById('out').textContent='done'">Go</button>
		<div id="out"></div>`)

	res, err := resolveText(page, "Go", 1, "click")
	require.NoError(t, err)
	assert.Equal(t, StrategyNative, res.Strategy)

	out, err := page.Evaluate(`() => document.getElementById('out').textContent`)
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestIntegrationAnchorTargetStripped(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<a id="link" href="#section" target="_blank">Jump</a>`)

	_, err := resolveText(page, "Jump", 1, "click")
	require.NoError(t, err)

	target, err := page.Evaluate(`() => document.getElementById('link').getAttribute('target')`)
	require.NoError(t, err)
	assert.Nil(t, target, "target attribute must be removed before the click")

	// The click must not have spawned a second page
	assert.Len(t, page.Context().Pages(), 1)
}

func TestIntegrationHiddenSelectorFailsFast(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<div id="ghost" style="display:none">hidden</div>`)

	start := time.Now()
	_, err := resolveSelector(page, "#ghost", "inspect")
	elapsed := time.Since(start)

	var ni *NotInteractableError
	require.ErrorAs(t, err, &ni)
	assert.Less(t, elapsed, selectorAttemptDelay,
		"hidden element must fail without waiting out the retry window")
}

func TestIntegrationSelectorNotFoundExhaustsRetries(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<div>nothing here</div>`)

	start := time.Now()
	_, err := resolveSelector(page, "#absent", "inspect")
	elapsed := time.Since(start)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.GreaterOrEqual(t, elapsed, 2*selectorAttemptDelay)
}

func TestIntegrationScrollToText(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<div style="height:5000px">spacer</div><div id="bottom">Destination</div>`)

	res, err := resolveText(page, "Destination", 1, "scroll")
	require.NoError(t, err)
	assert.Equal(t, "bottom", res.Descriptor.ID)
	assert.Greater(t, res.ScrollY, float64(0))
}

func TestIntegrationFillInput(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<input id="name" type="text">`)

	_, err := resolveSelector(page, "#name", "inspect")
	require.NoError(t, err)
	require.NoError(t, page.Fill("#name", "hello"))

	value, err := page.Evaluate(`() => document.getElementById('name').value`)
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

func TestIntegrationListElements(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<a href="/a">Link</a>
		<button>Press</button>
		<input type="text">
		<div style="display:none"><button>Invisible</button></div>
		<span>plain text</span>`)

	raw, err := page.Evaluate(listElementsScript, map[string]interface{}{
		"limit":     10,
		"textLimit": 80,
	})
	require.NoError(t, err)

	res, err := parseListResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
}

func TestIntegrationPageInfo(t *testing.T) {
	page := newIntegrationPage(t)
	setContent(t, page, `<html><head>
		<title>Test Page</title>
		<meta name="description" content="a test document">
		<meta name="author" content="nobody">
	</head><body>hi</body></html>`)

	info, err := getPageInfo(page)
	require.NoError(t, err)

	assert.Equal(t, "Test Page", info.Title)
	assert.Equal(t, "a test document", info.Description)
	assert.Equal(t, "nobody", info.Author)
	assert.Greater(t, info.ViewportWidth, 0)
}

func TestIntegrationRelaunchAfterPageClosed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser integration test in short mode")
	}

	log, _ := logging.NewLogger("browser-integration-test")
	session := NewSession(log)
	t.Cleanup(func() { _ = session.Close() })

	first, err := session.GetPage(true)
	require.NoError(t, err)
	firstBrowser := first.Context().Browser()

	require.NoError(t, first.Close())

	second, err := session.GetPage(true)
	require.NoError(t, err)
	assert.False(t, second.IsClosed())
	assert.False(t, firstBrowser.IsConnected(),
		"previous browser must be torn down on relaunch, not leaked")

	require.NoError(t, second.SetContent(`<div id="x">ok</div>`))
	out, err := second.Evaluate(`() => document.getElementById('x').textContent`)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestIntegrationHeadlessRelaunch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser integration test in short mode")
	}

	log, _ := logging.NewLogger("browser-integration-test")
	session := NewSession(log)
	t.Cleanup(func() { _ = session.Close() })

	first, err := session.GetPage(true)
	require.NoError(t, err)

	again, err := session.GetPage(true)
	require.NoError(t, err)
	assert.Equal(t, first, again, "same mode must reuse the live page")
}
