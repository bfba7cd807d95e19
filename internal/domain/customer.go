package domain

import "time"

type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	CarModel     string
	LicensePlate string
	CreatedAt    time.Time
}
