package model

import "github.com/shopspring/decimal"

// BillerCategory groups billers for catalog browsing.
type BillerCategory struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
}

// Biller is a third-party payee with per-payment amount limits.
type Biller struct {
	BillerID            string          `json:"biller_id"`
	CategoryID          string          `json:"category_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	AccountNumberFormat string          `json:"account_number_format"`
	MinimumAmount       decimal.Decimal `json:"minimum_amount"`
	MaximumAmount       decimal.Decimal `json:"maximum_amount"`
	Currency            string          `json:"currency"`
	IsActive            bool            `json:"is_active"`
}
