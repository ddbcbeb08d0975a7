package testdata

// RequiredFieldErrors maps the data-test id of each registration error
// element to the message shown when the field is left empty. The odd
// entries ("fields.last-name.required", the padded phone message) are
// faithful to what the app actually renders.
func RequiredFieldErrors() map[string]string {
	return map[string]string{
		"first-name-error": "First name is required",
		"last-name-error":  "fields.last-name.required",
		"dob-error":        "Date of Birth is required",
		"address-error":    "Address is required",
		"postcode-error":   "Postcode is required",
		"city-error":       "City is required",
		"state-error":      "State is required",
		"country-error":    "Country is required",
		"phone-error":      " Phone is required.",
		"email-error":      "Email is required",
		"password-error":   "Password is required",
	}
}

// ValidationErrors are the server-side messages for out-of-range field
// values, keyed by a stable name used in the validation table tests.
type ValidationErrors struct {
	FirstNameTooLong          string
	LastNameTooLong           string
	UserTooYoung              string
	UserTooOld                string
	AddressTooLong            string
	CityTooLong               string
	StateTooLong              string
	PostcodeTooLong           string
	EmailExists               string
	PasswordTooShort          string
	PasswordCaseRequirement   string
	PasswordSymbolRequirement string
	PasswordNumberRequirement string
	PhoneNumbersOnly          string
	PhoneTooLong              string
}

// RegistrationValidationErrors returns the backend validation messages.
func RegistrationValidationErrors() ValidationErrors {
	return ValidationErrors{
		FirstNameTooLong:          "The first name field must not be greater than 40 characters.",
		LastNameTooLong:           "The last name field must not be greater than 20 characters.",
		UserTooYoung:              "Customer must be 18 years old.",
		UserTooOld:                "Customer must be younger than 75 years old.",
		AddressTooLong:            "The address field must not be greater than 70 characters.",
		CityTooLong:               "The city field must not be greater than 40 characters.",
		StateTooLong:              "The state field must not be greater than 40 characters.",
		PostcodeTooLong:           "The postcode field must not be greater than 10 characters.",
		EmailExists:               "A customer with this email address already exists.",
		PasswordTooShort:          "The password field must be at least 8 characters.",
		PasswordCaseRequirement:   "The password field must contain at least one uppercase and one lowercase letter.",
		PasswordSymbolRequirement: "The password field must contain at least one symbol.",
		PasswordNumberRequirement: "The password field must contain at least one number.",
		PhoneNumbersOnly:          "Only numbers are allowed.",
		PhoneTooLong:              "The phone field must not be greater than 24 characters.",
	}
}

// Login page messages.
const (
	LoginEmailRequired      = "Email is required"
	LoginPasswordRequired   = "Password is required"
	LoginEmailFormatInvalid = "Email format is invalid"
	LoginPasswordLength     = "Password length is invalid"
	AccountLockedMessage    = "Account locked, too many failed attempts. Please contact the administrator."
	NoProductsFoundMessage  = "There are no products found."
)
