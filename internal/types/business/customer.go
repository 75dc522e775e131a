package business

import (
	"time"

	"github.com/google/uuid"
)

// Customer owns permits and vehicles. The national identity number is
// the key used for registry lookups.
type Customer struct {
	ID               uuid.UUID  `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	NationalIDNumber string     `json:"national_id_number"`
	Email            string     `json:"email,omitempty"`
	PhoneNumber      string     `json:"phone_number,omitempty"`
	Language         string     `json:"language,omitempty"`
	Address          string     `json:"address,omitempty"`
	ZoneID           *uuid.UUID `json:"zone_id,omitempty"`
}

// Vehicle holds the registry-backed vehicle data relevant to permits.
// The low-emission flag drives the pricing discount and is refreshed
// from the vehicle registry, not entered by the customer.
type Vehicle struct {
	ID                 uuid.UUID `json:"id"`
	RegistrationNumber string    `json:"registration_number"`
	Manufacturer       string    `json:"manufacturer,omitempty"`
	Model              string    `json:"model,omitempty"`
	PowerType          string    `json:"power_type,omitempty"`
	EuroClass          int       `json:"euro_class,omitempty"`
	Emission           int       `json:"emission,omitempty"`
	EmissionType       string    `json:"emission_type,omitempty"`
	IsLowEmission      bool      `json:"is_low_emission"`
	SerialNumber       string    `json:"serial_number,omitempty"`
}

// DrivingLicence is the licence summary fetched from the registry when
// verifying that a customer may hold a permit.
type DrivingLicence struct {
	CustomerID uuid.UUID `json:"customer_id"`
	StartDate  time.Time `json:"start_date"`
	Active     bool      `json:"active"`
	Categories []string  `json:"categories"`
}
