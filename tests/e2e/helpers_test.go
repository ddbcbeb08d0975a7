package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// Condition-wait helpers. Every assertion about the page is a bounded
// wait on DOM state; none of the specs sleep for fixed durations.

func expectMS() float64 {
	return float64(suiteConfig.ExpectTimeoutMS)
}

func requireVisible(t *testing.T, loc playwright.Locator, what string) {
	t.Helper()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(expectMS()),
	})
	require.NoError(t, err, "%s should be visible", what)
}

func requireHidden(t *testing.T, loc playwright.Locator, what string) {
	t.Helper()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(expectMS()),
	})
	require.NoError(t, err, "%s should not be visible", what)
}

// requireText waits until the locator's text equals want.
func requireText(t *testing.T, loc playwright.Locator, want, what string) {
	t.Helper()
	requireVisible(t, loc, what)
	var last string
	require.Eventually(t, func() bool {
		text, err := loc.TextContent()
		if err != nil {
			return false
		}
		last = text
		return text == want
	}, suiteConfig.ExpectTimeout(), 100*time.Millisecond,
		"%s should read %q, last saw %q", what, want, last)
}

// requireContainsText waits until the locator's text contains want.
func requireContainsText(t *testing.T, loc playwright.Locator, want, what string) {
	t.Helper()
	requireVisible(t, loc, what)
	var last string
	require.Eventually(t, func() bool {
		text, err := loc.TextContent()
		if err != nil {
			return false
		}
		last = text
		return strings.Contains(text, want)
	}, suiteConfig.ExpectTimeout(), 100*time.Millisecond,
		"%s should contain %q, last saw %q", what, want, last)
}

// requireURL waits for the page to land on the exact URL.
func requireURL(t *testing.T, page playwright.Page, url string) {
	t.Helper()
	err := page.WaitForURL(url, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(suiteConfig.TimeoutMS)),
	})
	require.NoError(t, err, "expected navigation to %s, at %s", url, page.URL())
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
