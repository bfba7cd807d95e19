package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)
}

func TestValidate_AcceptsValidSubmission(t *testing.T) {
	v := &Validator{Now: fixedNow}

	req, errs := v.Validate(annaSubmission())
	assert.Nil(t, errs)
	assert.NotNil(t, req)
	assert.Equal(t, "Anna Svensson", req.Name)
	assert.Equal(t, "12345", req.PostalCode)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), req.BookingDate)
}

func annaSubmission() Submission {
	return Submission{
		ServicePackageID: "a3a1f3de-9b74-4a6e-8f60-1a2b3c4d5e6f",
		Name:             "Anna Svensson",
		Email:            "anna@example.se",
		Phone:            "0701234567",
		CarModel:         "Volvo V60",
		Address:          "Storgatan 1",
		PostalCode:       "123 45",
		City:             "Stockholm",
		BookingDate:      "2026-03-15",
		BookingTime:      "10:00",
	}
}

func TestValidate_NormalizesPostalCode(t *testing.T) {
	v := &Validator{Now: fixedNow}

	for _, postal := range []string{"123 45", "12345", " 123 45 ", "1 2 3 4 5"} {
		sub := annaSubmission()
		sub.PostalCode = postal
		req, errs := v.Validate(sub)
		assert.Nil(t, errs, "postal %q should be accepted", postal)
		assert.Equal(t, "12345", req.PostalCode)
	}
}

func TestValidate_RejectsBadPostalCodes(t *testing.T) {
	v := &Validator{Now: fixedNow}

	for _, postal := range []string{"1234", "123456", "12a45", ""} {
		sub := annaSubmission()
		sub.PostalCode = postal
		_, errs := v.Validate(sub)
		assert.Len(t, errs, 1, "postal %q should be rejected", postal)
		assert.Equal(t, "postalCode", errs[0].Field)
	}
}

func TestValidate_DateRules(t *testing.T) {
	v := &Validator{Now: fixedNow}

	cases := []struct {
		date string
		ok   bool
	}{
		{"2026-03-13", false}, // yesterday
		{"2026-03-14", true},  // today, despite 15:30 current time
		{"2026-03-15", true},  // tomorrow
		{"2025-12-31", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		sub := annaSubmission()
		sub.BookingDate = tc.date
		_, errs := v.Validate(sub)
		if tc.ok {
			assert.Nil(t, errs, "date %q should be accepted", tc.date)
		} else {
			assert.Len(t, errs, 1, "date %q should be rejected", tc.date)
			assert.Equal(t, "bookingDate", errs[0].Field)
		}
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	v := &Validator{Now: fixedNow}

	_, errs := v.Validate(Submission{})
	assert.NotNil(t, errs)

	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, field := range []string{"servicePackageId", "name", "email", "phone", "carModel", "address", "postalCode", "city", "bookingDate", "bookingTime"} {
		assert.True(t, fields[field], "expected error for %s", field)
	}
}

func TestValidate_OptionalFields(t *testing.T) {
	v := &Validator{Now: fixedNow}

	sub := annaSubmission()
	sub.LicensePlate = ""
	sub.SpecialRequests = ""
	req, errs := v.Validate(sub)
	assert.Nil(t, errs)
	assert.Empty(t, req.LicensePlate)
	assert.Empty(t, req.SpecialRequests)
}

func TestValidate_PhoneRules(t *testing.T) {
	v := &Validator{Now: fixedNow}

	good := []string{"0701234567", "+46 70 123 45 67", "070-123 45 67"}
	for _, phone := range good {
		sub := annaSubmission()
		sub.Phone = phone
		_, errs := v.Validate(sub)
		assert.Nil(t, errs, "phone %q should be accepted", phone)
	}

	bad := []string{"070123", "abcdefghijk", "070123456x"}
	for _, phone := range bad {
		sub := annaSubmission()
		sub.Phone = phone
		_, errs := v.Validate(sub)
		assert.Len(t, errs, 1, "phone %q should be rejected", phone)
		assert.Equal(t, "phone", errs[0].Field)
	}
}

func TestValidate_EmailRules(t *testing.T) {
	v := &Validator{Now: fixedNow}

	for _, email := range []string{"anna", "anna@", "@example.se", "anna example@se"} {
		sub := annaSubmission()
		sub.Email = email
		_, errs := v.Validate(sub)
		assert.Len(t, errs, 1, "email %q should be rejected", email)
		assert.Equal(t, "email", errs[0].Field)
	}
}
