package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountFrozen   AccountStatus = "FROZEN"
	AccountClosed   AccountStatus = "CLOSED"
)

var (
	// ErrInsufficientFunds is returned when a debit exceeds the available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotActive is returned when a mutation targets a non-active account.
	ErrAccountNotActive = errors.New("account is not active")
)

// Account is a customer bank account. The ledger invariant
// available_balance = balance - hold_amount must hold after every mutation.
type Account struct {
	AccountNumber    string          `json:"account_number"`
	CustomerID       string          `json:"customer_id"`
	AccountType      string          `json:"account_type"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	HoldAmount       decimal.Decimal `json:"hold_amount"`
	Currency         string          `json:"currency"`
	Status           AccountStatus   `json:"status"`
	OpenedAt         time.Time       `json:"opened_at"`
	LastActivityAt   time.Time       `json:"last_activity_at"`
}

// ApplyMutation applies a single balance change to the account. Credit-like
// types raise both balance and available balance; debit-like types lower both
// and require available >= amount. This is the only code path that changes
// account balances.
func (a *Account) ApplyMutation(amount decimal.Decimal, txnType TransactionType) error {
	if a.Status != AccountActive {
		return ErrAccountNotActive
	}
	switch txnType {
	case TypeDeposit, TypeInterest:
		a.Balance = a.Balance.Add(amount)
		a.AvailableBalance = a.AvailableBalance.Add(amount)
	case TypeWithdrawal, TypeTransfer, TypeBillPayment, TypeFee:
		if a.AvailableBalance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		a.Balance = a.Balance.Sub(amount)
		a.AvailableBalance = a.AvailableBalance.Sub(amount)
	default:
		return fmt.Errorf("unsupported transaction type %s", txnType)
	}
	a.LastActivityAt = time.Now()
	return nil
}

// CanDebit reports whether the account is active and has at least amount available.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Status == AccountActive && a.AvailableBalance.GreaterThanOrEqual(amount)
}

// BalancesConsistent reports whether available = balance - hold.
func (a *Account) BalancesConsistent() bool {
	return a.AvailableBalance.Equal(a.Balance.Sub(a.HoldAmount))
}
