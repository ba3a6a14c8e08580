package database

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/nellcorp/bankgate/model"
)

// CreateAccount stores the account under the next sequential account number
// and returns the stored copy.
func (s *MemoryStore) CreateAccount(account model.Account) (model.Account, error) {
	s.accmu.Lock()
	defer s.accmu.Unlock()

	account.AccountNumber = fmt.Sprintf("%d", s.nextAccountNumber)
	s.nextAccountNumber++

	stored := account
	s.accounts[stored.AccountNumber] = &stored
	return stored, nil
}

// GetAccount returns a snapshot of the account, or ErrNotFound.
func (s *MemoryStore) GetAccount(number string) (*model.Account, error) {
	s.accmu.RLock()
	defer s.accmu.RUnlock()

	account, ok := s.accounts[number]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "account %s", number)
	}
	snapshot := *account
	return &snapshot, nil
}

// GetAccountsByCustomer returns snapshots of every account owned by the
// customer, in no particular order.
func (s *MemoryStore) GetAccountsByCustomer(customerID string) ([]model.Account, error) {
	s.accmu.RLock()
	defer s.accmu.RUnlock()

	var accounts []model.Account
	for _, account := range s.accounts {
		if account.CustomerID == customerID {
			accounts = append(accounts, *account)
		}
	}
	return accounts, nil
}

// UpdateAccountBalance applies a single balance mutation under the account
// map's write lock. The check-and-debit is atomic with respect to any other
// mutation of the same account.
func (s *MemoryStore) UpdateAccountBalance(_ context.Context, number string, amount decimal.Decimal, txnType model.TransactionType) error {
	s.accmu.Lock()
	defer s.accmu.Unlock()

	account, ok := s.accounts[number]
	if !ok {
		return errors.Wrapf(ErrNotFound, "account %s", number)
	}
	return account.ApplyMutation(amount, txnType)
}
