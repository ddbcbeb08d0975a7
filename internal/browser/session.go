// Package browser owns the Playwright lifecycle: one Session per test
// binary, one isolated context+page per test.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
)

// Session wraps a running Playwright driver and a launched browser.
type Session struct {
	cfg     *config.Config
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Launch starts the driver and the configured browser engine. Call once
// from TestMain and Close when the run is over.
func Launch(cfg *config.Config) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright driver: %w", err)
	}

	var engine playwright.BrowserType
	switch cfg.Browser {
	case "firefox":
		engine = pw.Firefox
	default:
		engine = pw.Chromium
	}

	b, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMoMS)),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch %s: %w", cfg.Browser, err)
	}

	return &Session{cfg: cfg, pw: pw, browser: b}, nil
}

// Close shuts the browser and the driver down.
func (s *Session) Close() {
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.pw != nil {
		_ = s.pw.Stop()
	}
}

// NewPage gives the test an isolated browser context and page. Teardown
// is registered on t.Cleanup and runs on every exit path, including
// failures; a failing test gets a screenshot first.
func (s *Session) NewPage(t *testing.T) playwright.Page {
	t.Helper()

	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  s.cfg.Viewport.Width,
			Height: s.cfg.Viewport.Height,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	}
	if s.cfg.Videos {
		opts.RecordVideo = &playwright.RecordVideo{
			Dir: filepath.Join(s.cfg.RunArtifactsDir(), "videos"),
		}
	}

	ctx, err := s.browser.NewContext(opts)
	if err != nil {
		t.Fatalf("create browser context: %v", err)
	}
	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		t.Fatalf("create page: %v", err)
	}

	page.SetDefaultTimeout(float64(s.cfg.TimeoutMS))
	page.SetDefaultNavigationTimeout(float64(s.cfg.TimeoutMS))

	t.Cleanup(func() {
		if t.Failed() && s.cfg.Screenshots {
			s.captureFailure(t, page)
		}
		_ = page.Close()
		_ = ctx.Close()
	})
	return page
}

func (s *Session) captureFailure(t *testing.T, page playwright.Page) {
	dir := filepath.Join(s.cfg.RunArtifactsDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Logf("could not create screenshot dir: %v", err)
		return
	}
	name := strings.ReplaceAll(t.Name(), "/", "_")
	path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", name, time.Now().Unix()))
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		t.Logf("failure screenshot failed: %v", err)
		return
	}
	t.Logf("failure screenshot: %s", path)
}
