// Package validation checks raw booking submissions against the field rules
// of the booking form and reports every violation at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe  = regexp.MustCompile(`^[0-9+\s-]{10,}$`)
	postalRe = regexp.MustCompile(`^\d{5}$`)
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// Submission is a raw booking form as received from the client. Nothing in
// it is trusted; Validate classifies every field.
type Submission struct {
	ServicePackageID string `json:"servicePackageId"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CarModel         string `json:"carModel"`
	LicensePlate     string `json:"licensePlate"`
	Address          string `json:"address"`
	PostalCode       string `json:"postalCode"`
	City             string `json:"city"`
	BookingDate      string `json:"bookingDate"`
	BookingTime      string `json:"bookingTime"`
	SpecialRequests  string `json:"specialRequests"`
}

// FieldError names a single violated field rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects all violations of one submission.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Request is a normalized submission that passed validation. PostalCode is
// whitespace-stripped and BookingDate is a parsed calendar date.
type Request struct {
	ServicePackageID string
	Name             string
	Email            string
	Phone            string
	CarModel         string
	LicensePlate     string
	Address          string
	PostalCode       string
	City             string
	BookingDate      time.Time
	BookingTime      string
	SpecialRequests  string
}

// Validator applies the booking form rules. Now is injectable for the
// date-not-in-the-past rule; the zero value uses time.Now.
type Validator struct {
	Now func() time.Time
}

func New() *Validator {
	return &Validator{Now: time.Now}
}

// Validate evaluates every field rule independently and returns either a
// normalized request or the full set of violations. Package existence is
// checked against the store by the caller, not here.
func (v *Validator) Validate(sub Submission) (*Request, Errors) {
	var errs Errors
	fail := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if strings.TrimSpace(sub.ServicePackageID) == "" {
		fail("servicePackageId", "select a wash package")
	}
	if len(strings.TrimSpace(sub.Name)) < 2 {
		fail("name", "name must be at least 2 characters")
	}
	if !emailRe.MatchString(sub.Email) {
		fail("email", "invalid email address")
	}
	if !phoneRe.MatchString(sub.Phone) {
		fail("phone", "invalid phone number")
	}
	if len(strings.TrimSpace(sub.CarModel)) < 2 {
		fail("carModel", "enter a car model")
	}
	if len(strings.TrimSpace(sub.Address)) < 5 {
		fail("address", "enter a full street address")
	}

	postal := strings.Join(strings.Fields(sub.PostalCode), "")
	if !postalRe.MatchString(postal) {
		fail("postalCode", "invalid postal code (5 digits)")
	}

	if len(strings.TrimSpace(sub.City)) < 2 {
		fail("city", "enter a city")
	}

	var date time.Time
	if sub.BookingDate == "" {
		fail("bookingDate", "select a date")
	} else {
		parsed, err := time.Parse(DateLayout, sub.BookingDate)
		if err != nil {
			fail("bookingDate", "invalid date")
		} else {
			now := v.Now
			if now == nil {
				now = time.Now
			}
			// Date-only comparison: time-of-day is zeroed on both sides so a
			// same-day booking is accepted at any hour.
			y, m, d := now().Date()
			today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
			date = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			if date.Before(today) {
				fail("bookingDate", "date has already passed")
			}
		}
	}

	if strings.TrimSpace(sub.BookingTime) == "" {
		fail("bookingTime", "select a time")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Request{
		ServicePackageID: strings.TrimSpace(sub.ServicePackageID),
		Name:             strings.TrimSpace(sub.Name),
		Email:            strings.TrimSpace(sub.Email),
		Phone:            strings.TrimSpace(sub.Phone),
		CarModel:         strings.TrimSpace(sub.CarModel),
		LicensePlate:     strings.TrimSpace(sub.LicensePlate),
		Address:          strings.TrimSpace(sub.Address),
		PostalCode:       postal,
		City:             strings.TrimSpace(sub.City),
		BookingDate:      date,
		BookingTime:      strings.TrimSpace(sub.BookingTime),
		SpecialRequests:  strings.TrimSpace(sub.SpecialRequests),
	}, nil
}
