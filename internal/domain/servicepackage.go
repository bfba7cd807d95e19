package domain

import "time"

type ServicePackage struct {
	ID              string
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
}
