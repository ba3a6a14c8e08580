package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest describes a two-account money movement.
type TransferRequest struct {
	FromAccountNumber string          `json:"from_account_number"`
	ToAccountNumber   string          `json:"to_account_number"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	ReferenceNumber   string          `json:"reference_number"`
}

// BillPaymentRequest describes a single-account debit against a biller.
// AccountNumber is the customer's account number on the biller's side.
type BillPaymentRequest struct {
	FromAccountNumber string          `json:"from_account_number"`
	BillerID          string          `json:"biller_id"`
	AccountNumber     string          `json:"account_number"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	ReferenceNumber   string          `json:"reference_number"`
}

type CustomerRegistrationRequest struct {
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postal_code"`
	Country     string    `json:"country"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
