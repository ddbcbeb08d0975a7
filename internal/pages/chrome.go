package pages

import (
	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
)

// Chrome exposes the navigation shell shared by every screen: the
// signed-in user's menu button, the sign-in link, and the account
// heading the app shows after login.
type Chrome struct {
	page playwright.Page

	NavMenu          playwright.Locator
	SignInButton     playwright.Locator
	MyAccountHeading playwright.Locator
}

// NewChrome binds the shared navigation components to page.
func NewChrome(page playwright.Page, _ *config.Config) *Chrome {
	return &Chrome{
		page:             page,
		NavMenu:          page.Locator(`[data-test="nav-menu"]`),
		SignInButton:     page.Locator(`[data-test="nav-sign-in"]`),
		MyAccountHeading: page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{Name: "My account"}),
	}
}

// UserMenuButton locates the nav menu button labeled with the signed-in
// user's full name.
func (c *Chrome) UserMenuButton(fullName string) playwright.Locator {
	return c.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: fullName})
}
