package testdata

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Registration is the full record the registration form accepts. The
// backend enforces the field rules (length ceilings, 18-75 age window,
// password complexity, numeric phone); this struct just has to be able
// to carry values that violate them.
type Registration struct {
	FirstName   string
	LastName    string
	DateOfBirth string // yyyy-mm-dd
	Address     string
	Postcode    string
	City        string
	State       string
	Country     string // ISO code, picked from the country <select>
	Phone       string
	Email       string
	Password    string
}

// DefaultRegistration is a record that passes every backend rule except
// email uniqueness. Callers wanting a submittable record should use
// UniqueRegistration.
func DefaultRegistration() Registration {
	return Registration{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "1990-01-01",
		Address:     "123 Main St",
		Postcode:    "12345",
		City:        "Anytown",
		State:       "State",
		Country:     "US",
		Phone:       "5551234567",
		Email:       "user@example.com",
		Password:    "Psswd1?!",
	}
}

var uniqueSeq atomic.Uint64

// UniqueRegistration returns the default record with an email no prior
// run has used. The timestamp keeps emails unique across suite runs;
// the sequence number keeps two calls within the same millisecond from
// colliding.
func UniqueRegistration() Registration {
	r := DefaultRegistration()
	r.Email = fmt.Sprintf("user%d.%d@example.com", time.Now().UnixMilli(), uniqueSeq.Add(1))
	return r
}
