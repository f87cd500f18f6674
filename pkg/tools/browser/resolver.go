package browser

import (
	"encoding/json"
	"fmt"
	"time"
)

// evaluator is the one page primitive the resolver needs. playwright.Page
// satisfies it; tests substitute a fake.
type evaluator interface {
	Evaluate(expression string, arg ...interface{}) (interface{}, error)
}

// selectorRetrySleep is replaced in tests to avoid real delays.
var selectorRetrySleep = time.Sleep

// resolveResult mirrors the plain-data payload returned by resolverScript.
type resolveResult struct {
	Status     string            `json:"status"`
	Total      int               `json:"total"`
	Descriptor ElementDescriptor `json:"descriptor"`
	Strategy   Strategy          `json:"strategy"`
	BestEffort bool              `json:"bestEffort"`
	HTML       string            `json:"html"`
	ScrollX    float64           `json:"scrollX"`
	ScrollY    float64           `json:"scrollY"`
}

// resolveText runs one atomic in-page resolution pass for a free-text query
// and performs the given action on the selected occurrence. The pass that
// picks the candidate also counts the total matches, so out-of-range errors
// report the real count without a second scan.
func resolveText(page evaluator, query string, occurrence int, action string) (*resolveResult, error) {
	raw, err := page.Evaluate(resolverScript, map[string]interface{}{
		"query":      query,
		"occurrence": occurrence,
		"action":     action,
		"textLimit":  descriptorTextLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("in-page resolution failed: %w", err)
	}

	res, err := parseResolveResult(raw)
	if err != nil {
		return nil, err
	}

	switch res.Status {
	case "ok":
		return res, nil
	case "not_found":
		return nil, &NotFoundError{Query: query}
	case "out_of_range":
		return nil, &OutOfRangeError{Query: query, Requested: occurrence, Total: res.Total}
	default:
		return nil, fmt.Errorf("unexpected resolution status %q", res.Status)
	}
}

// resolveSelector runs the bounded retry loop for CSS-selector flows: up to
// maxSelectorAttempts queries, selectorAttemptDelay apart. An absent element
// is retried; an element that is present but fails the extended visibility
// check fails immediately with NotInteractableError, without consuming the
// remaining attempts.
func resolveSelector(page evaluator, selector, action string) (*resolveResult, error) {
	for attempt := 1; attempt <= maxSelectorAttempts; attempt++ {
		raw, err := page.Evaluate(resolverScript, map[string]interface{}{
			"selector":  selector,
			"action":    action,
			"textLimit": descriptorTextLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("in-page resolution failed: %w", err)
		}

		res, err := parseResolveResult(raw)
		if err != nil {
			return nil, err
		}

		switch res.Status {
		case "ok":
			return res, nil
		case "not_interactable":
			return nil, &NotInteractableError{Query: selector}
		case "not_found":
			if attempt < maxSelectorAttempts {
				selectorRetrySleep(selectorAttemptDelay)
			}
		default:
			return nil, fmt.Errorf("unexpected resolution status %q", res.Status)
		}
	}

	return nil, &NotFoundError{Query: selector}
}

// parseResolveResult converts the loosely-typed Evaluate return value into a
// resolveResult via a JSON round trip.
func parseResolveResult(raw interface{}) (*resolveResult, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("unserializable resolution result: %w", err)
	}

	var res resolveResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("malformed resolution result: %w", err)
	}
	return &res, nil
}

// outcomeFromResult builds the reporting struct for click/hover responses.
func outcomeFromResult(res *resolveResult) InteractionOutcome {
	return InteractionOutcome{
		Descriptor:   res.Descriptor,
		Strategy:     res.Strategy,
		TotalMatches: res.Total,
		BestEffort:   res.BestEffort,
	}
}
