package model

import "time"

type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "ACTIVE"
	CustomerInactive  CustomerStatus = "INACTIVE"
	CustomerSuspended CustomerStatus = "SUSPENDED"
	CustomerPending   CustomerStatus = "PENDING"
)

// CustomerProfile holds the customer record owned by the customer repository.
// Authentication and billing hold lookups only, never their own copy.
type CustomerProfile struct {
	CustomerID  string         `json:"customer_id"`
	Username    string         `json:"username"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	DateOfBirth time.Time      `json:"date_of_birth"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	PostalCode  string         `json:"postal_code"`
	Country     string         `json:"country"`
	Status      CustomerStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	LastLoginAt time.Time      `json:"last_login_at"`
}
