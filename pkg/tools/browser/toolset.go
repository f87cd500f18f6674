package browser

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/tcehjaava/webinteractiontools/pkg/config"
	"github.com/tcehjaava/webinteractiontools/pkg/logging"
)

// Toolset binds every browser tool to the shared session.
type Toolset struct {
	session  *Session
	log      *logging.Logger
	headless bool
}

// NewToolset creates the tool collection. headless is the mode requested for
// the lazily-launched browser; it may be overridden per process by the CLI.
func NewToolset(session *Session, log *logging.Logger, headless bool) *Toolset {
	return &Toolset{
		session:  session,
		log:      log,
		headless: headless,
	}
}

func (t *Toolset) page() (playwright.Page, error) {
	return t.session.GetPage(t.headless)
}

// imageProvider returns the configured screenshot provider, empty when the
// config system is not initialized.
func imageProvider() string {
	if config.IsInitialized() {
		return config.GetBrowser().ImageProvider
	}
	return ""
}

// formatOutcome renders a click/hover result for the agent.
func formatOutcome(verb, query string, o InteractionOutcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s element matching %q\n", verb, query)
	fmt.Fprintf(&b, "Target: %s\n", describeElement(o.Descriptor))
	fmt.Fprintf(&b, "Strategy: %s\n", o.Strategy)
	fmt.Fprintf(&b, "Matches: %d", o.TotalMatches)

	if o.BestEffort {
		b.WriteString("\nNote: no interactive element found near the match; the event was dispatched at the matched element itself and may have had no effect")
	}

	return b.String()
}

func describeElement(d ElementDescriptor) string {
	var b strings.Builder

	b.WriteString("<")
	b.WriteString(d.Tag)
	if d.ID != "" {
		fmt.Fprintf(&b, " id=%q", d.ID)
	}
	if d.Class != "" {
		fmt.Fprintf(&b, " class=%q", d.Class)
	}
	b.WriteString(">")

	if d.Text != "" {
		fmt.Fprintf(&b, " %q", d.Text)
	}

	return b.String()
}
