package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/nellcorp/bankgate/model"
)

// RecordTransaction appends an immutable record to the log. Transaction ids
// are generated by this store's own counters, so a collision is a programming
// error, not a user-facing condition.
func (s *MemoryStore) RecordTransaction(_ context.Context, txn *model.Transaction) (*model.Transaction, error) {
	s.txmu.Lock()
	defer s.txmu.Unlock()

	if _, exists := s.transactions[txn.TransactionID]; exists {
		panic(fmt.Sprintf("duplicate transaction id %s", txn.TransactionID))
	}
	stored := *txn
	s.transactions[stored.TransactionID] = &stored
	return &stored, nil
}

func (s *MemoryStore) GetTransaction(id string) (*model.Transaction, error) {
	s.txmu.RLock()
	defer s.txmu.RUnlock()

	txn, ok := s.transactions[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "transaction %s", id)
	}
	snapshot := *txn
	return &snapshot, nil
}

func (s *MemoryStore) GetTransactionsByAccount(number string) ([]model.Transaction, error) {
	s.txmu.RLock()
	defer s.txmu.RUnlock()

	var txns []model.Transaction
	for _, txn := range s.transactions {
		if txn.AccountNumber == number {
			txns = append(txns, *txn)
		}
	}
	return txns, nil
}

// GetTransactionsByPrefix returns every record whose id starts with prefix.
// Transfer legs share the transfer id as their prefix.
func (s *MemoryStore) GetTransactionsByPrefix(prefix string) ([]model.Transaction, error) {
	s.txmu.RLock()
	defer s.txmu.RUnlock()

	var txns []model.Transaction
	for id, txn := range s.transactions {
		if strings.HasPrefix(id, prefix) {
			txns = append(txns, *txn)
		}
	}
	return txns, nil
}

// GetBillPayments returns all bill-payment records whose account number is in
// accountNumbers.
func (s *MemoryStore) GetBillPayments(accountNumbers []string) ([]model.Transaction, error) {
	owned := make(map[string]struct{}, len(accountNumbers))
	for _, number := range accountNumbers {
		owned[number] = struct{}{}
	}

	s.txmu.RLock()
	defer s.txmu.RUnlock()

	var payments []model.Transaction
	for _, txn := range s.transactions {
		if txn.Type != model.TypeBillPayment {
			continue
		}
		if _, ok := owned[txn.AccountNumber]; ok {
			payments = append(payments, *txn)
		}
	}
	return payments, nil
}

// NextTransactionID reserves the next transfer id.
func (s *MemoryStore) NextTransactionID() string {
	s.txmu.Lock()
	defer s.txmu.Unlock()

	id := model.FormatTransactionID(s.nextTransactionID)
	s.nextTransactionID++
	return id
}

// NextPaymentID reserves the next bill-payment id.
func (s *MemoryStore) NextPaymentID() string {
	s.txmu.Lock()
	defer s.txmu.Unlock()

	id := model.FormatPaymentID(s.nextPaymentID)
	s.nextPaymentID++
	return id
}
