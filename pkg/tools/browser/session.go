package browser

import (
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/tcehjaava/webinteractiontools/pkg/config"
	"github.com/tcehjaava/webinteractiontools/pkg/logging"
)

// Session owns the single browser instance shared by every tool. The browser
// is launched lazily on first use and relaunched when a caller requests a
// headless mode different from the live one. At most one page exists at a
// time; the protocol layer serializes tool calls against it.
type Session struct {
	mu       sync.Mutex
	pw       *playwright.Playwright
	browser  playwright.Browser
	context  playwright.BrowserContext
	page     playwright.Page
	headless bool
	log      *logging.Logger
}

// NewSession creates an unlaunched session. The browser starts on the first
// GetPage call.
func NewSession(log *logging.Logger) *Session {
	return &Session{log: log}
}

// GetPage returns the live page, launching Chromium on first use. If the
// requested headless mode differs from the running browser's mode, the
// browser is torn down and relaunched.
func (s *Session) GetPage(headless bool) (playwright.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page != nil {
		switch {
		case s.page.IsClosed():
			// The page can die underneath us (window.close(), crash, a
			// tool side effect). The old browser process must go too or
			// it leaks for the life of the server.
			s.log.Warnf("page was closed externally, relaunching browser")
			s.teardownLocked()
		case s.headless != headless:
			s.log.Infof("headless mode changed (%v -> %v), relaunching browser", s.headless, headless)
			s.teardownLocked()
		default:
			return s.page, nil
		}
	}

	if err := s.launchLocked(headless); err != nil {
		return nil, err
	}
	return s.page, nil
}

func (s *Session) launchLocked(headless bool) error {
	if s.pw == nil {
		// Driver install and subprocess chatter must stay off stdout,
		// which carries protocol frames.
		opts := &playwright.RunOptions{
			Verbose: false,
			Stdout:  s.log.Writer(),
			Stderr:  s.log.Writer(),
		}

		if err := playwright.Install(opts); err != nil {
			return fmt.Errorf("failed to install playwright: %w", err)
		}

		pw, err := playwright.Run(opts)
		if err != nil {
			return fmt.Errorf("failed to start playwright: %w", err)
		}
		s.pw = pw
	}

	width, height, timeout := sessionDefaults()

	browser, err := s.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &headless,
	})
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  width,
			Height: height,
		},
	})
	if err != nil {
		browser.Close()
		return fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		return fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(timeout)

	s.browser = browser
	s.context = context
	s.page = page
	s.headless = headless

	s.log.Infof("browser launched (headless=%v, viewport=%dx%d)", headless, width, height)
	return nil
}

// teardownLocked closes page, context, and browser but keeps the Playwright
// driver alive for relaunch. Caller holds the mutex.
func (s *Session) teardownLocked() {
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
	if s.context != nil {
		_ = s.context.Close()
		s.context = nil
	}
	if s.browser != nil {
		_ = s.browser.Close()
		s.browser = nil
	}
}

// Close tears down the browser and stops the Playwright driver. Safe to call
// when nothing was ever launched.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teardownLocked()

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
		s.pw = nil
	}

	s.log.Infof("browser session closed")
	return nil
}

// sessionDefaults reads viewport and timeout settings, falling back to
// built-in defaults when the config system is not initialized (tests).
func sessionDefaults() (width, height int, timeoutMs float64) {
	if config.IsInitialized() {
		cfg := config.GetBrowser()
		return cfg.ViewportWidth, cfg.ViewportHeight, cfg.TimeoutMs
	}
	return 1280, 720, 30000
}
