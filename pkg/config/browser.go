package config

import (
	"fmt"
	"sync"

	"github.com/gobwas/glob"
)

const (
	// SectionIDBrowser is the identifier for the browser settings section
	SectionIDBrowser = "browser"

	// Default values for browser settings
	defaultHeadless       = true
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
	defaultTimeoutMs      = 30000.0
)

// BrowserSection manages browser automation configuration settings.
type BrowserSection struct {
	Headless       bool     `json:"headless"`
	ViewportWidth  int      `json:"viewport_width"`
	ViewportHeight int      `json:"viewport_height"`
	TimeoutMs      float64  `json:"timeout_ms"`
	ImageProvider  string   `json:"image_provider"`
	AllowedURLs    []string `json:"allowed_urls"`

	compiled []glob.Glob
	mu       sync.RWMutex
}

// NewBrowserSection creates a new browser section with default settings.
func NewBrowserSection() *BrowserSection {
	return &BrowserSection{
		Headless:       defaultHeadless,
		ViewportWidth:  defaultViewportWidth,
		ViewportHeight: defaultViewportHeight,
		TimeoutMs:      defaultTimeoutMs,
	}
}

// ID returns the section identifier.
func (s *BrowserSection) ID() string {
	return SectionIDBrowser
}

// Title returns the section title.
func (s *BrowserSection) Title() string {
	return "Browser Settings"
}

// Description returns the section description.
func (s *BrowserSection) Description() string {
	return "Configure browser automation defaults: headless mode, viewport, timeouts, screenshot provider, and the navigation allowlist."
}

// Data returns the current configuration data.
func (s *BrowserSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed := make([]interface{}, len(s.AllowedURLs))
	for i, pattern := range s.AllowedURLs {
		allowed[i] = pattern
	}

	return map[string]interface{}{
		"headless":        s.Headless,
		"viewport_width":  s.ViewportWidth,
		"viewport_height": s.ViewportHeight,
		"timeout_ms":      s.TimeoutMs,
		"image_provider":  s.ImageProvider,
		"allowed_urls":    allowed,
	}
}

// SetData updates the configuration from the provided data.
func (s *BrowserSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "headless":
			enabled, ok := value.(bool)
			if !ok {
				return fmt.Errorf("invalid value type for headless: expected bool, got %T", value)
			}
			s.Headless = enabled

		case "viewport_width":
			width, err := toInt(value)
			if err != nil {
				return fmt.Errorf("invalid viewport_width: %w", err)
			}
			s.ViewportWidth = width

		case "viewport_height":
			height, err := toInt(value)
			if err != nil {
				return fmt.Errorf("invalid viewport_height: %w", err)
			}
			s.ViewportHeight = height

		case "timeout_ms":
			timeout, ok := value.(float64)
			if !ok {
				return fmt.Errorf("invalid value type for timeout_ms: expected number, got %T", value)
			}
			s.TimeoutMs = timeout

		case "image_provider":
			provider, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for image_provider: expected string, got %T", value)
			}
			s.ImageProvider = provider

		case "allowed_urls":
			patterns, err := toStringSlice(value)
			if err != nil {
				return fmt.Errorf("invalid allowed_urls: %w", err)
			}
			compiled, err := compilePatterns(patterns)
			if err != nil {
				return err
			}
			s.AllowedURLs = patterns
			s.compiled = compiled

		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *BrowserSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ViewportWidth < 320 || s.ViewportWidth > 7680 {
		return fmt.Errorf("viewport_width %d out of range (320-7680)", s.ViewportWidth)
	}
	if s.ViewportHeight < 240 || s.ViewportHeight > 4320 {
		return fmt.Errorf("viewport_height %d out of range (240-4320)", s.ViewportHeight)
	}
	if s.TimeoutMs < 1000 || s.TimeoutMs > 300000 {
		return fmt.Errorf("timeout_ms %.0f out of range (1000-300000)", s.TimeoutMs)
	}
	return nil
}

// IsURLAllowed reports whether navigation to the given URL is permitted.
// An empty allowlist permits everything.
func (s *BrowserSection) IsURLAllowed(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.compiled) == 0 {
		return true
	}

	for _, g := range s.compiled {
		if g.Match(url) {
			return true
		}
	}
	return false
}

// SetAllowedURLs replaces the navigation allowlist.
func (s *BrowserSection) SetAllowedURLs(patterns []string) error {
	compiled, err := compilePatterns(patterns)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.AllowedURLs = patterns
	s.compiled = compiled
	return nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid URL pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

func toInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		// JSON numbers come as float64
		return int(v), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}

func toStringSlice(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", value)
	}
}
