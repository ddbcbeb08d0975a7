package pages

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
)

// PasswordRecoveryPage drives /auth/forgot-password.
type PasswordRecoveryPage struct {
	page playwright.Page
	cfg  *config.Config

	EmailInput   playwright.Locator
	SubmitButton playwright.Locator
	EmailError   playwright.Locator
}

// ForgotPasswordResult is the intercepted API outcome of a reset request.
type ForgotPasswordResult struct {
	Status  int
	Success bool
}

// NewPasswordRecoveryPage binds a recovery page object to page.
func NewPasswordRecoveryPage(page playwright.Page, cfg *config.Config) *PasswordRecoveryPage {
	return &PasswordRecoveryPage{
		page: page,
		cfg:  cfg,

		EmailInput:   page.Locator(`[data-test="email"]`),
		SubmitButton: page.Locator(`[data-test="forgot-password-submit"]`),
		EmailError:   page.Locator(`[data-test="email-error"]`),
	}
}

// Navigate opens the forgot-password form.
func (p *PasswordRecoveryPage) Navigate() error {
	if _, err := p.page.Goto(p.cfg.ForgotPasswordURL()); err != nil {
		return fmt.Errorf("navigate to password recovery page: %w", err)
	}
	return nil
}

func (p *PasswordRecoveryPage) EnterEmail(email string) error {
	if err := p.EmailInput.Fill(email); err != nil {
		return fmt.Errorf("fill recovery email: %w", err)
	}
	return nil
}

func (p *PasswordRecoveryPage) ClickSubmit() error {
	if err := p.SubmitButton.Click(); err != nil {
		return fmt.Errorf("click forgot-password submit: %w", err)
	}
	return nil
}

// RequestPasswordReset fills the email and submits the form.
func (p *PasswordRecoveryPage) RequestPasswordReset(email string) error {
	if err := p.EnterEmail(email); err != nil {
		return err
	}
	return p.ClickSubmit()
}

// ExpectForgotPasswordResponse registers a waiter for the
// forgot-password API response, then runs action. The waiter must be in
// place before the submit happens or a fast response slips past it.
func (p *PasswordRecoveryPage) ExpectForgotPasswordResponse(action func() error) (ForgotPasswordResult, error) {
	api := p.cfg.ForgotPasswordAPI()
	resp, err := p.page.ExpectResponse(
		func(r playwright.Response) bool { return r.URL() == api },
		action,
		playwright.PageExpectResponseOptions{Timeout: playwright.Float(float64(p.cfg.TimeoutMS))},
	)
	if err != nil {
		return ForgotPasswordResult{}, fmt.Errorf("wait for forgot-password response: %w", err)
	}

	body, err := resp.Body()
	if err != nil {
		return ForgotPasswordResult{}, fmt.Errorf("read forgot-password response body: %w", err)
	}
	var payload struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ForgotPasswordResult{}, fmt.Errorf("decode forgot-password response: %w", err)
	}
	return ForgotPasswordResult{Status: resp.Status(), Success: payload.Success}, nil
}
