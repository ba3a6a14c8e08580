/*
Copyright 2024 Nellcorp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Result envelopes for every gateway operation. Each carries a success flag,
// a payload on success, and either a single error message or a list of
// validation messages on failure. Raw errors never cross this boundary.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoginResult struct {
	Success      bool             `json:"success"`
	Token        string           `json:"token,omitempty"`
	Customer     *CustomerProfile `json:"customer,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
	LoginTime    time.Time        `json:"login_time"`
}

type LogoutResult struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	LogoutTime time.Time `json:"logout_time"`
}

type TokenValidationResult struct {
	IsValid        bool             `json:"is_valid"`
	Customer       *CustomerProfile `json:"customer,omitempty"`
	ErrorMessage   string           `json:"error_message,omitempty"`
	ValidationTime time.Time        `json:"validation_time"`
}

type CustomerRegistrationResult struct {
	Success          bool     `json:"success"`
	CustomerID       string   `json:"customer_id,omitempty"`
	Message          string   `json:"message"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
}

type CustomerProfileResult struct {
	Success      bool             `json:"success"`
	Customer     *CustomerProfile `json:"customer,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

type CustomerUpdateResult struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
}

type PasswordChangeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AccountListResult struct {
	Success      bool      `json:"success"`
	Accounts     []Account `json:"accounts"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

type AccountDetailResult struct {
	Success      bool     `json:"success"`
	Account      *Account `json:"account,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

type AccountBalanceResult struct {
	Success          bool            `json:"success"`
	AccountNumber    string          `json:"account_number,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	Currency         string          `json:"currency,omitempty"`
	LastUpdated      time.Time       `json:"last_updated"`
	ErrorMessage     string          `json:"error_message,omitempty"`
}

type TransactionHistoryResult struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
	TotalCount   int           `json:"total_count"`
	PageNumber   int           `json:"page_number"`
	PageSize     int           `json:"page_size"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type TransferResult struct {
	Success          bool      `json:"success"`
	TransactionID    string    `json:"transaction_id,omitempty"`
	Message          string    `json:"message"`
	TransferDate     time.Time `json:"transfer_date"`
	ValidationErrors []string  `json:"validation_errors,omitempty"`
}

type TransferStatusResult struct {
	Success       bool              `json:"success"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Status        TransactionStatus `json:"status,omitempty"`
	StatusMessage string            `json:"status_message"`
	LastUpdated   time.Time         `json:"last_updated"`
}

type BillerCategoryResult struct {
	Success      bool             `json:"success"`
	Categories   []BillerCategory `json:"categories"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

type BillerListResult struct {
	Success      bool     `json:"success"`
	Billers      []Biller `json:"billers"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

type BillPaymentResult struct {
	Success          bool      `json:"success"`
	TransactionID    string    `json:"transaction_id,omitempty"`
	Message          string    `json:"message"`
	PaymentDate      time.Time `json:"payment_date"`
	ValidationErrors []string  `json:"validation_errors,omitempty"`
}

type BillPaymentHistoryResult struct {
	Success      bool          `json:"success"`
	Payments     []Transaction `json:"payments"`
	TotalCount   int           `json:"total_count"`
	PageNumber   int           `json:"page_number"`
	PageSize     int           `json:"page_size"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type SystemStatusResult struct {
	IsHealthy  bool      `json:"is_healthy"`
	Version    string    `json:"version"`
	ServerTime time.Time `json:"server_time"`
	Status     string    `json:"status"`
	Warnings   []string  `json:"warnings"`
	Errors     []string  `json:"errors"`
}
