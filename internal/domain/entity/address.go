// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery destination owned by a single user.
type Address struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	FullName   string    `json:"full_name"` // Recipient name.
	Phone      string    `json:"phone"`     // Recipient phone.
	Province   string    `json:"province"`
	City       string    `json:"city"`
	Street     string    `json:"street"`
	PostalCode string    `json:"postal_code"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	IsDefault  bool      `json:"is_default"` // Exactly one address per user carries the flag.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Snapshot copies the printable part of the address for embedding into an order.
func (a *Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		FullName:   a.FullName,
		Phone:      a.Phone,
		Province:   a.Province,
		City:       a.City,
		Street:     a.Street,
		PostalCode: a.PostalCode,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
	}
}

// AddressSnapshot is the immutable copy of an address stored with an order.
type AddressSnapshot struct {
	FullName   string  `json:"full_name"`
	Phone      string  `json:"phone"`
	Province   string  `json:"province"`
	City       string  `json:"city"`
	Street     string  `json:"street"`
	PostalCode string  `json:"postal_code"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}
