package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/toolshop-qa/toolshop-e2e/internal/config"
	"github.com/toolshop-qa/toolshop-e2e/internal/testdata"
)

// RegistrationPage drives /auth/register.
type RegistrationPage struct {
	page playwright.Page
	cfg  *config.Config

	FirstNameInput   playwright.Locator
	LastNameInput    playwright.Locator
	DateOfBirthInput playwright.Locator
	AddressInput     playwright.Locator
	PostcodeInput    playwright.Locator
	CityInput        playwright.Locator
	StateInput       playwright.Locator
	CountrySelect    playwright.Locator
	PhoneInput       playwright.Locator
	EmailInput       playwright.Locator
	PasswordInput    playwright.Locator

	RegisterButton playwright.Locator
	RegisterError  playwright.Locator
}

// NewRegistrationPage binds a registration page object to page.
func NewRegistrationPage(page playwright.Page, cfg *config.Config) *RegistrationPage {
	return &RegistrationPage{
		page: page,
		cfg:  cfg,

		FirstNameInput:   page.Locator(`[data-test="first-name"]`),
		LastNameInput:    page.Locator(`[data-test="last-name"]`),
		DateOfBirthInput: page.Locator(`[data-test="dob"]`),
		AddressInput:     page.Locator(`[data-test="address"]`),
		PostcodeInput:    page.Locator(`[data-test="postcode"]`),
		CityInput:        page.Locator(`[data-test="city"]`),
		StateInput:       page.Locator(`[data-test="state"]`),
		CountrySelect:    page.Locator(`[data-test="country"]`),
		PhoneInput:       page.Locator(`[data-test="phone"]`),
		EmailInput:       page.Locator(`[data-test="email"]`),
		PasswordInput:    page.Locator(`[data-test="password"]`),

		RegisterButton: page.Locator(`[data-test="register-submit"]`),
		RegisterError:  page.Locator(`[data-test="register-error"]`),
	}
}

// Navigate opens a fresh registration form. Re-navigating is how the
// validation table tests reset state between cases.
func (p *RegistrationPage) Navigate() error {
	if _, err := p.page.Goto(p.cfg.RegisterURL()); err != nil {
		return fmt.Errorf("navigate to registration page: %w", err)
	}
	return nil
}

// Fill writes every field of the record into the form. Country is a
// select element and is only touched when a value is present; plain
// inputs are filled even with empty strings so a record can exercise
// required-field validation.
func (p *RegistrationPage) Fill(r testdata.Registration) error {
	fields := []struct {
		name    string
		locator playwright.Locator
		value   string
	}{
		{"first name", p.FirstNameInput, r.FirstName},
		{"last name", p.LastNameInput, r.LastName},
		{"date of birth", p.DateOfBirthInput, r.DateOfBirth},
		{"address", p.AddressInput, r.Address},
		{"postcode", p.PostcodeInput, r.Postcode},
		{"city", p.CityInput, r.City},
		{"state", p.StateInput, r.State},
		{"phone", p.PhoneInput, r.Phone},
		{"email", p.EmailInput, r.Email},
		{"password", p.PasswordInput, r.Password},
	}
	for _, f := range fields {
		if err := f.locator.Fill(f.value); err != nil {
			return fmt.Errorf("fill %s: %w", f.name, err)
		}
	}
	if r.Country != "" {
		if _, err := p.CountrySelect.SelectOption(playwright.SelectOptionValues{
			Values: &[]string{r.Country},
		}); err != nil {
			return fmt.Errorf("select country %q: %w", r.Country, err)
		}
	}
	return nil
}

// ClickRegister submits the form as-is.
func (p *RegistrationPage) ClickRegister() error {
	if err := p.RegisterButton.Click(); err != nil {
		return fmt.Errorf("click register: %w", err)
	}
	return nil
}

// Submit fills the form from the record and submits it.
func (p *RegistrationPage) Submit(r testdata.Registration) error {
	if err := p.Fill(r); err != nil {
		return err
	}
	return p.ClickRegister()
}

// FieldError locates the validation message element for the given
// data-test id (e.g. "first-name-error").
func (p *RegistrationPage) FieldError(dataTest string) playwright.Locator {
	return p.page.Locator(fmt.Sprintf(`[data-test=%q]`, dataTest))
}

// WaitForLoginRedirect blocks until the post-registration redirect to
// the login page lands.
func (p *RegistrationPage) WaitForLoginRedirect() error {
	if err := p.page.WaitForURL(p.cfg.LoginURL(), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(p.cfg.TimeoutMS)),
	}); err != nil {
		return fmt.Errorf("wait for redirect to login: %w", err)
	}
	return nil
}
