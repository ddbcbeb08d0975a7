package pages

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
)

// ErrUserNotFound is returned when an expected row is absent from the
// admin users table. It is a definitive lookup miss, not a timeout.
var ErrUserNotFound = errors.New("user not found in admin users table")

// ErrAdminCredentialsMissing makes a missing-credentials setup failure
// distinguishable from a real login failure.
var ErrAdminCredentialsMissing = errors.New("admin credentials not configured")

// AdminPage drives the admin dashboard and its user management screen.
// Admin flows require an elevated session, so the page object holds the
// login page it authenticates through; the login capability is injected
// rather than inherited.
type AdminPage struct {
	page  playwright.Page
	cfg   *config.Config
	login *LoginPage

	navMenu       playwright.Locator
	usersNavLink  playwright.Locator
	userRows      playwright.Locator
	toast         playwright.Locator
	failedLogins  playwright.Locator
	submitButton  playwright.Locator
}

// NewAdminPage binds an admin page object to page, authenticating
// through login.
func NewAdminPage(page playwright.Page, cfg *config.Config, login *LoginPage) *AdminPage {
	return &AdminPage{
		page:  page,
		cfg:   cfg,
		login: login,

		navMenu:      page.Locator(`[data-test="nav-menu"]`),
		usersNavLink: page.Locator(`[data-test="nav-admin-users"]`),
		userRows:     page.Locator("table tbody tr"),
		toast:        page.Locator(".toast"),
		failedLogins: page.Locator(`[data-test="failed-login-attempts"]`),
		submitButton: page.Locator(`[data-test="user-submit"]`),
	}
}

// LoginAsAdmin signs in with the configured admin account and waits for
// the dashboard redirect. Missing credentials are a setup failure.
func (p *AdminPage) LoginAsAdmin() error {
	if !p.cfg.HasAdminCredentials() {
		return ErrAdminCredentialsMissing
	}
	if err := p.login.Navigate(); err != nil {
		return err
	}
	if err := p.login.Login(p.cfg.Admin.Email, p.cfg.Admin.Password); err != nil {
		return err
	}
	if err := p.page.WaitForURL(p.cfg.AdminDashboardURL(), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for admin dashboard: %w", err)
	}
	return nil
}

// OpenUsersPage navigates to the user management table through the nav
// menu and waits for the table to load.
func (p *AdminPage) OpenUsersPage() error {
	if err := p.navMenu.Click(); err != nil {
		return fmt.Errorf("open nav menu: %w", err)
	}
	if err := p.usersNavLink.Click(); err != nil {
		return fmt.Errorf("click users nav link: %w", err)
	}
	if err := p.page.WaitForURL(p.cfg.AdminUsersURL(), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for admin users page: %w", err)
	}
	if err := p.userRows.First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for users table: %w", err)
	}
	return nil
}

// UserRowByEmail finds the table row for the given account. An absent
// row yields ErrUserNotFound so callers can tell a lookup miss from a
// slow page.
func (p *AdminPage) UserRowByEmail(email string) (playwright.Locator, error) {
	row := p.userRows.Filter(playwright.LocatorFilterOptions{HasText: email})
	count, err := row.Count()
	if err != nil {
		return nil, fmt.Errorf("count rows for %q: %w", email, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, email)
	}
	return row.First(), nil
}

// DeleteUserByEmail removes the account through its row's delete
// control, then waits for the row to detach and for the confirmation
// toast to appear and clear.
func (p *AdminPage) DeleteUserByEmail(email string) error {
	row, err := p.UserRowByEmail(email)
	if err != nil {
		return err
	}
	if err := row.GetByRole(*playwright.AriaRoleButton, playwright.LocatorGetByRoleOptions{
		Name: "Delete",
	}).Click(); err != nil {
		return fmt.Errorf("click delete for %q: %w", email, err)
	}
	if err := row.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateDetached,
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for row removal of %q: %w", email, err)
	}
	return p.waitForToast()
}

// ResetFailedLoginAttempts clears the lockout counter on the account's
// edit form, restoring its ability to log in.
func (p *AdminPage) ResetFailedLoginAttempts(email string) error {
	row, err := p.UserRowByEmail(email)
	if err != nil {
		return err
	}
	if err := row.GetByRole(*playwright.AriaRoleButton, playwright.LocatorGetByRoleOptions{
		Name: "Edit",
	}).Click(); err != nil {
		return fmt.Errorf("click edit for %q: %w", email, err)
	}
	if err := p.page.WaitForURL("**/admin/users/edit/**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for user edit form: %w", err)
	}
	if err := p.failedLogins.Fill("0"); err != nil {
		return fmt.Errorf("reset failed login counter: %w", err)
	}
	if err := p.submitButton.Click(); err != nil {
		return fmt.Errorf("save user %q: %w", email, err)
	}
	return p.waitForToast()
}

// Logout signs the admin session out through the nav menu.
func (p *AdminPage) Logout() error {
	if err := p.navMenu.Click(); err != nil {
		return fmt.Errorf("open nav menu: %w", err)
	}
	if err := p.page.Locator(`[data-test="nav-sign-out"]`).Click(); err != nil {
		return fmt.Errorf("click sign out: %w", err)
	}
	return nil
}

// waitForToast observes the transient confirmation toast through its
// full appear/disappear cycle so the next action starts from a settled
// page.
func (p *AdminPage) waitForToast() error {
	if err := p.toast.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(p.cfg.ExpectTimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for confirmation toast: %w", err)
	}
	if err := p.toast.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for toast to clear: %w", err)
	}
	return nil
}
