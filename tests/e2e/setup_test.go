// Package e2e runs the browser specs against a deployed storefront.
// Configuration comes from E2E_* environment variables; run
// `e2ectl check` first to validate the environment.
package e2e

import (
	"fmt"
	"os"
	"testing"

	"github.com/toolshop-qa/toolshop-e2e/internal/browser"
	"github.com/toolshop-qa/toolshop-e2e/internal/config"
	"github.com/toolshop-qa/toolshop-e2e/internal/fixtures"
)

var (
	suiteConfig *config.Config
	session     *browser.Session
	launchErr   error
)

// TestMain resolves configuration once and shares one launched browser
// across the whole binary; each test still gets its own context/page.
func TestMain(m *testing.M) {
	var err error
	suiteConfig, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "e2e: %v\n", err)
		os.Exit(1)
	}

	session, launchErr = browser.Launch(suiteConfig)
	code := m.Run()
	if session != nil {
		session.Close()
	}
	os.Exit(code)
}

// newSuite hands the test its fixture container, skipping when no
// browser could be launched (e.g. drivers not installed on CI).
func newSuite(t *testing.T) *fixtures.Suite {
	t.Helper()
	if launchErr != nil {
		t.Skipf("browser unavailable: %v", launchErr)
	}
	return fixtures.NewSuite(t, suiteConfig, session)
}
