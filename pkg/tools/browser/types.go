package browser

import "time"

// Strategy identifies the interaction mechanism that ultimately fired the event.
type Strategy string

const (
	// StrategyNative is the element's own native interaction primitive (element.click()).
	StrategyNative Strategy = "native"

	// StrategySyntheticPointerEvents is a constructed pointer/mouse event
	// dispatched at the element's client-rect center.
	StrategySyntheticPointerEvents Strategy = "synthetic_pointer_events"

	// StrategyBareEvent is a minimal bubbling event dispatch, the last resort.
	StrategyBareEvent Strategy = "bare_event"
)

// ElementDescriptor is a snapshot of a resolved element taken at resolution
// time. It is for reporting only: the DOM may change the moment an
// interaction fires, so a descriptor must never be used to address the
// element a second time.
type ElementDescriptor struct {
	Tag   string `json:"tag"`
	ID    string `json:"id,omitempty"`
	Class string `json:"class,omitempty"`
	Text  string `json:"text,omitempty"`
	Depth int    `json:"depth"`
}

// InteractionOutcome reports how a click or hover resolved.
type InteractionOutcome struct {
	Descriptor ElementDescriptor
	Strategy   Strategy

	// TotalMatches is the number of text matches found in the same pass
	// that selected the target, so occurrence errors can report it without
	// a second scan.
	TotalMatches int

	// BestEffort is set when no interactive element could be resolved and
	// the interaction was dispatched at the raw text match itself. The
	// event fires but may be a DOM-level no-op.
	BestEffort bool
}

const (
	// Selector resolution retry policy
	maxSelectorAttempts  = 3
	selectorAttemptDelay = 1000 * time.Millisecond

	// descriptorTextLimit caps the text snippet captured in descriptors
	descriptorTextLimit = 80

	// DefaultMaxHTMLLength bounds extract_html output before truncation.
	DefaultMaxHTMLLength = 10000

	// DefaultListLimit bounds list_elements output.
	DefaultListLimit = 50
)
