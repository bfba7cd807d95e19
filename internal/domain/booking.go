package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// KnownStatus reports whether s is one of the four booking statuses.
func KnownStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID               string
	BookingNumber    string
	CustomerID       string
	ServicePackageID string
	BookingDate      time.Time
	BookingTime      string
	Address          string
	PostalCode       string
	City             string
	Status           BookingStatus
	SpecialRequests  string
	TotalPrice       float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BookingDetails is the joined read shape used by the lookup and list paths.
type BookingDetails struct {
	Booking
	Customer       Customer
	ServicePackage ServicePackage
}
