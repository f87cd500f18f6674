package browser

import "fmt"

// NotFoundError indicates zero matches for a text query or CSS selector.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element found matching %q", e.Query)
}

// OutOfRangeError indicates a requested occurrence index beyond the match count.
type OutOfRangeError struct {
	Query     string
	Requested int
	Total     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("occurrence %d requested for %q but only %d match(es) exist",
		e.Requested, e.Query, e.Total)
}

// NotInteractableError indicates the element was located but is hidden or
// disabled. Distinct from NotFoundError: the element exists, it just cannot
// receive the interaction, so retrying is pointless.
type NotInteractableError struct {
	Query string
}

func (e *NotInteractableError) Error() string {
	return fmt.Sprintf("element matching %q found but not interactable (hidden, zero-sized, or disabled)", e.Query)
}
