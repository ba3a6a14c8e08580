package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit     TransactionType = "DEPOSIT"
	TypeWithdrawal  TransactionType = "WITHDRAWAL"
	TypeTransfer    TransactionType = "TRANSFER"
	TypeBillPayment TransactionType = "BILL_PAYMENT"
	TypeFee         TransactionType = "FEE"
	TypeInterest    TransactionType = "INTEREST"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
	StatusReversed  TransactionStatus = "REVERSED"
)

// Transaction is an immutable ledger record. A transfer produces two records,
// a debit leg and a credit leg, sharing a transfer id prefix and linked
// through RelatedAccountNumber.
type Transaction struct {
	TransactionID        string            `json:"transaction_id"`
	AccountNumber        string            `json:"account_number"`
	Type                 TransactionType   `json:"type"`
	Amount               decimal.Decimal   `json:"amount"`
	Currency             string            `json:"currency"`
	Description          string            `json:"description"`
	ReferenceNumber      string            `json:"reference_number"`
	Status               TransactionStatus `json:"status"`
	TransactionDate      time.Time         `json:"transaction_date"`
	RelatedAccountNumber string            `json:"related_account_number,omitempty"`
}

func (t *Transaction) ToJSON() ([]byte, error) {
	return json.Marshal(t)
}
