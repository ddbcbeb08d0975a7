package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toolshop-qa/toolshop-e2e/internal/testdata"
)

func TestRegistrationFormElementsRendered(t *testing.T) {
	s := newSuite(t)
	reg := s.RegistrationPage()

	requireVisible(t, reg.FirstNameInput, "first name input")
	requireVisible(t, reg.LastNameInput, "last name input")
	requireVisible(t, reg.DateOfBirthInput, "date of birth input")
	requireVisible(t, reg.AddressInput, "address input")
	requireVisible(t, reg.PostcodeInput, "postcode input")
	requireVisible(t, reg.CityInput, "city input")
	requireVisible(t, reg.StateInput, "state input")
	requireVisible(t, reg.CountrySelect, "country select")
	requireVisible(t, reg.PhoneInput, "phone input")
	requireVisible(t, reg.EmailInput, "email input")
	requireVisible(t, reg.PasswordInput, "password input")
	requireVisible(t, reg.RegisterButton, "register button")
}

func TestEmptyRegistrationShowsAllRequiredErrors(t *testing.T) {
	s := newSuite(t)
	reg := s.RegistrationPage()

	require.NoError(t, reg.ClickRegister())

	for dataTest, message := range testdata.RequiredFieldErrors() {
		requireContainsText(t, reg.FieldError(dataTest), strings.TrimSpace(message), dataTest)
	}
}

// Each case submits the default record with one field mutated out of
// range and asserts the backend message on that field's error element.
// Navigate resets the form between cases; the app keeps stale errors
// around otherwise.
func TestRegistrationFieldValidation(t *testing.T) {
	s := newSuite(t)
	reg := s.RegistrationPage()
	messages := testdata.RegistrationValidationErrors()
	takenEmail := s.Users().User1.Email

	cases := []struct {
		name      string
		mutate    func(*testdata.Registration)
		errorElem string
		want      string
	}{
		{
			name:      "first name over 40 characters",
			mutate:    func(r *testdata.Registration) { r.FirstName = strings.Repeat("a", 41) },
			errorElem: "register-error",
			want:      messages.FirstNameTooLong,
		},
		{
			name:      "last name over 20 characters",
			mutate:    func(r *testdata.Registration) { r.LastName = strings.Repeat("a", 41) },
			errorElem: "register-error",
			want:      messages.LastNameTooLong,
		},
		{
			name:      "customer younger than 18",
			mutate:    func(r *testdata.Registration) { r.DateOfBirth = "2024-01-01" },
			errorElem: "register-error",
			want:      messages.UserTooYoung,
		},
		{
			name:      "customer older than 75",
			mutate:    func(r *testdata.Registration) { r.DateOfBirth = "1900-01-01" },
			errorElem: "register-error",
			want:      messages.UserTooOld,
		},
		{
			name:      "address over 70 characters",
			mutate:    func(r *testdata.Registration) { r.Address = strings.Repeat("a", 71) },
			errorElem: "register-error",
			want:      messages.AddressTooLong,
		},
		{
			name:      "postcode over 10 characters",
			mutate:    func(r *testdata.Registration) { r.Postcode = strings.Repeat("1", 11) },
			errorElem: "register-error",
			want:      messages.PostcodeTooLong,
		},
		{
			name:      "city over 40 characters",
			mutate:    func(r *testdata.Registration) { r.City = strings.Repeat("a", 41) },
			errorElem: "register-error",
			want:      messages.CityTooLong,
		},
		{
			name:      "state over 40 characters",
			mutate:    func(r *testdata.Registration) { r.State = strings.Repeat("a", 41) },
			errorElem: "register-error",
			want:      messages.StateTooLong,
		},
		{
			name:      "email already registered",
			mutate:    func(r *testdata.Registration) { r.Email = takenEmail },
			errorElem: "register-error",
			want:      messages.EmailExists,
		},
		{
			name:      "password under 8 characters",
			mutate:    func(r *testdata.Registration) { r.Password = "Aaaa1!" },
			errorElem: "register-error",
			want:      messages.PasswordTooShort,
		},
		{
			name:      "password without uppercase",
			mutate:    func(r *testdata.Registration) { r.Password = "aaaaaa1!" },
			errorElem: "register-error",
			want:      messages.PasswordCaseRequirement,
		},
		{
			name:      "password without number",
			mutate:    func(r *testdata.Registration) { r.Password = "Aaaaaaaa!" },
			errorElem: "register-error",
			want:      messages.PasswordNumberRequirement,
		},
		{
			name:      "password without symbol",
			mutate:    func(r *testdata.Registration) { r.Password = "Aaaaaaaa1" },
			errorElem: "register-error",
			want:      messages.PasswordSymbolRequirement,
		},
		{
			name:      "phone with non-numeric characters",
			mutate:    func(r *testdata.Registration) { r.Phone = "111-111-1111" },
			errorElem: "phone-error",
			want:      messages.PhoneNumbersOnly,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, reg.Navigate(), "reset form")

			record := testdata.DefaultRegistration()
			tc.mutate(&record)

			require.NoError(t, reg.Submit(record))

			requireContainsText(t, reg.FieldError(tc.errorElem), tc.want, tc.errorElem)
		})
	}
}

// Full round trip: register a fresh account, sign in with it, verify
// the signed-in chrome, sign out again.
func TestRegistrationAndLoginRoundTrip(t *testing.T) {
	s := newSuite(t)
	reg := s.RegistrationPage()
	record := s.UniqueRegistration()

	require.NoError(t, reg.Submit(record))
	require.NoError(t, reg.WaitForLoginRedirect())

	login := s.BareLoginPage()
	require.NoError(t, login.Login(record.Email, record.Password))
	require.NoError(t, login.WaitForAccountPage())

	chrome := s.Chrome()
	requireVisible(t, chrome.UserMenuButton(record.FirstName+" "+record.LastName),
		"menu button with the new user's name")

	require.NoError(t, login.Logout())
	requireURL(t, s.Page(), s.Config().LoginURL())
	requireVisible(t, chrome.SignInButton, "sign-in link after logout")
	requireHidden(t, chrome.NavMenu, "user nav menu after logout")
}

func TestRegistrationRejectsDuplicateEmail(t *testing.T) {
	s := newSuite(t)
	reg := s.RegistrationPage()
	record := s.UniqueRegistration()

	require.NoError(t, reg.Submit(record))
	require.NoError(t, reg.WaitForLoginRedirect())

	require.NoError(t, reg.Navigate())
	require.NoError(t, reg.Submit(record))

	requireContainsText(t, reg.RegisterError,
		testdata.RegistrationValidationErrors().EmailExists, "register error")
}
