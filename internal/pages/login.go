// Package pages holds one page object per storefront screen. Each
// object binds to a live playwright.Page plus the suite config, exposes
// locators for the screen's stable data-test hooks, and wraps
// multi-step flows as composite methods. Network-observing methods
// always register the waiter before performing the action that
// triggers the request.
package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
)

// LoginPage drives /auth/login.
type LoginPage struct {
	page playwright.Page
	cfg  *config.Config

	EmailInput    playwright.Locator
	PasswordInput playwright.Locator
	LoginButton   playwright.Locator

	EmailError    playwright.Locator
	PasswordError playwright.Locator
	LoginError    playwright.Locator

	ForgotPasswordLink playwright.Locator
	RegisterLink       playwright.Locator

	unmaskButton playwright.Locator
	maskButton   playwright.Locator

	navMenu playwright.Locator
}

// NewLoginPage binds a login page object to page. It does not navigate;
// the fixture layer does that during setup.
func NewLoginPage(page playwright.Page, cfg *config.Config) *LoginPage {
	return &LoginPage{
		page: page,
		cfg:  cfg,

		EmailInput:    page.GetByPlaceholder("Your email"),
		PasswordInput: page.GetByPlaceholder("Your password"),
		LoginButton:   page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Login"}),

		EmailError:    page.Locator(`[data-test="email-error"]`),
		PasswordError: page.Locator(`[data-test="password-error"]`),
		LoginError:    page.Locator(`[data-test="login-error"]`),

		ForgotPasswordLink: page.GetByText("Forgot your Password?"),
		RegisterLink:       page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: "Register your account"}),

		unmaskButton: page.Locator(`button:has(svg[data-icon="eye"])`),
		maskButton:   page.Locator(`button:has(svg[data-icon="eye-slash"])`),

		navMenu: page.Locator(`[data-test="nav-menu"]`),
	}
}

// Navigate opens the login form.
func (p *LoginPage) Navigate() error {
	if _, err := p.page.Goto(p.cfg.LoginURL()); err != nil {
		return fmt.Errorf("navigate to login page: %w", err)
	}
	return nil
}

func (p *LoginPage) EnterEmail(email string) error {
	if err := p.EmailInput.Fill(email); err != nil {
		return fmt.Errorf("fill email: %w", err)
	}
	return nil
}

func (p *LoginPage) EnterPassword(password string) error {
	if err := p.PasswordInput.Fill(password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	return nil
}

func (p *LoginPage) ClickLogin() error {
	if err := p.LoginButton.Click(); err != nil {
		return fmt.Errorf("click login: %w", err)
	}
	return nil
}

// Login submits the form with the given credentials.
func (p *LoginPage) Login(email, password string) error {
	if err := p.EnterEmail(email); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	return p.ClickLogin()
}

// Logout signs the current user out through the navigation menu.
func (p *LoginPage) Logout() error {
	if err := p.navMenu.Click(); err != nil {
		return fmt.Errorf("open nav menu: %w", err)
	}
	if err := p.page.Locator(`[data-test="nav-sign-out"]`).Click(); err != nil {
		return fmt.Errorf("click sign out: %w", err)
	}
	return nil
}

// PasswordMasked reports whether the password input currently censors
// its value, derived from the input's type attribute.
func (p *LoginPage) PasswordMasked() (bool, error) {
	typ, err := p.PasswordInput.GetAttribute("type")
	if err != nil {
		return false, fmt.Errorf("read password input type: %w", err)
	}
	return typ == "password", nil
}

// TogglePasswordVisibility clicks whichever eye button complements the
// input's current masking state, so applying it twice restores the
// original state.
func (p *LoginPage) TogglePasswordVisibility() error {
	masked, err := p.PasswordMasked()
	if err != nil {
		return err
	}
	if masked {
		if err := p.unmaskButton.Click(); err != nil {
			return fmt.Errorf("click unmask password: %w", err)
		}
		return nil
	}
	if err := p.maskButton.Click(); err != nil {
		return fmt.Errorf("click mask password: %w", err)
	}
	return nil
}

// GoToRegistration follows the registration link.
func (p *LoginPage) GoToRegistration() error {
	if err := p.RegisterLink.Click(); err != nil {
		return fmt.Errorf("click register link: %w", err)
	}
	return nil
}

// GoToPasswordRecovery follows the forgot-password link.
func (p *LoginPage) GoToPasswordRecovery() error {
	if err := p.ForgotPasswordLink.Click(); err != nil {
		return fmt.Errorf("click forgot password link: %w", err)
	}
	return nil
}

// WaitForAccountPage blocks until the post-login redirect to /account
// lands, bounded by the expect timeout.
func (p *LoginPage) WaitForAccountPage() error {
	if err := p.page.WaitForURL(p.cfg.AccountURL(), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for account page: %w", err)
	}
	return nil
}
