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

package bankgate

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nellcorp/bankgate/internal/lock"
	"github.com/nellcorp/bankgate/model"
)

// readAccount fetches an account snapshot under its key lock, so the read
// synchronizes with any transfer or bill payment holding that account.
func (g *Bankgate) readAccount(accountNumber string) (*model.Account, error) {
	locker := lock.NewLocker(g.locks, accountNumber)
	locker.Lock()
	defer locker.Unlock()
	return g.datasource.GetAccount(accountNumber)
}

// GetCustomerAccounts returns the caller's Active accounts. The customer id
// must match the identity behind the token.
func (g *Bankgate) GetCustomerAccounts(ctx context.Context, token, customerID string) (result model.AccountListResult) {
	_, span := tracer.Start(ctx, "Listing customer accounts")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.AccountListResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get accounts: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.ErrorMessage = "Invalid authentication token"
		return result
	}
	if customerID == "" {
		result.ErrorMessage = "Customer ID is required."
		return result
	}
	if customer.CustomerID != customerID {
		result.ErrorMessage = "Access denied: Customer ID mismatch"
		return result
	}

	accounts, err := g.datasource.GetAccountsByCustomer(customerID)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Failed to get customer accounts: %v", err)
		return result
	}

	active := make([]model.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Status == model.AccountActive {
			active = append(active, account)
		}
	}

	result.Success = true
	result.Accounts = active
	return result
}

// GetAccountDetails returns one account owned by the caller.
func (g *Bankgate) GetAccountDetails(ctx context.Context, token, accountNumber string) (result model.AccountDetailResult) {
	_, span := tracer.Start(ctx, "Fetching account details")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.AccountDetailResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get account details: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.ErrorMessage = "Invalid authentication token"
		return result
	}

	if accountNumber == "" {
		result.ErrorMessage = "Account number is required."
		return result
	}

	account, err := g.readAccount(accountNumber)
	if err != nil {
		result.ErrorMessage = "Account not found."
		return result
	}
	if account.CustomerID != customer.CustomerID {
		result.ErrorMessage = "Access denied: You can only view your own accounts."
		return result
	}

	result.Success = true
	result.Account = account
	return result
}

// GetAccountBalance returns the current and available balance of one account
// owned by the caller.
func (g *Bankgate) GetAccountBalance(ctx context.Context, token, accountNumber string) (result model.AccountBalanceResult) {
	_, span := tracer.Start(ctx, "Fetching account balance")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.AccountBalanceResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get account balance: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.ErrorMessage = "Invalid authentication token"
		return result
	}

	if accountNumber == "" {
		result.ErrorMessage = "Account number is required."
		return result
	}

	account, err := g.readAccount(accountNumber)
	if err != nil {
		result.ErrorMessage = "Account not found."
		return result
	}
	if account.CustomerID != customer.CustomerID {
		result.ErrorMessage = "Access denied: You can only view your own account balances."
		return result
	}

	result.Success = true
	result.AccountNumber = accountNumber
	result.Balance = account.Balance
	result.AvailableBalance = account.AvailableBalance
	result.Currency = account.Currency
	result.LastUpdated = time.Now()
	return result
}

// OpenAccount creates an Active account for a customer with the given initial
// deposit and returns its assigned number.
func (g *Bankgate) OpenAccount(ctx context.Context, customerID, accountType string, initialDeposit decimal.Decimal) (string, error) {
	_, span := tracer.Start(ctx, "Opening account")
	defer span.End()

	now := time.Now()
	account := model.Account{
		CustomerID:       customerID,
		AccountType:      accountType,
		Balance:          initialDeposit,
		AvailableBalance: initialDeposit,
		HoldAmount:       decimal.Zero,
		Currency:         "USD",
		Status:           model.AccountActive,
		OpenedAt:         now,
		LastActivityAt:   now,
	}
	created, err := g.datasource.CreateAccount(account)
	if err != nil {
		return "", err
	}
	return created.AccountNumber, nil
}

// hasSufficientFunds is an advisory pre-check; the debit itself re-verifies
// atomically inside the account mutation.
func (g *Bankgate) hasSufficientFunds(accountNumber string, amount decimal.Decimal) bool {
	account, err := g.datasource.GetAccount(accountNumber)
	if err != nil {
		return false
	}
	return account.CanDebit(amount)
}
