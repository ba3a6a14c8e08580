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
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCustomerAccounts(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	token := loginAs(t, engine, "admin", "admin123")

	result := engine.GetCustomerAccounts(ctx, token, "CUST001")
	require.True(t, result.Success)
	require.Len(t, result.Accounts, 2)
	for _, account := range result.Accounts {
		assert.Equal(t, "CUST001", account.CustomerID)
	}

	mismatch := engine.GetCustomerAccounts(ctx, token, "CUST002")
	assert.False(t, mismatch.Success)
	assert.Equal(t, "Access denied: Customer ID mismatch", mismatch.ErrorMessage)
}

func TestGetCustomerAccountsEmptyID(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := loginAs(t, engine, "admin", "admin123")

	result := engine.GetCustomerAccounts(context.Background(), token, "")
	assert.False(t, result.Success)
	assert.Equal(t, "Customer ID is required.", result.ErrorMessage)
}

func TestGetAccountDetails(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	token := loginAs(t, engine, "admin", "admin123")

	result := engine.GetAccountDetails(ctx, token, "1001")
	require.True(t, result.Success)
	require.NotNil(t, result.Account)
	assert.Equal(t, "Savings", result.Account.AccountType)
	assert.True(t, result.Account.Balance.Equal(decimal.RequireFromString("50000.00")))

	notOwned := engine.GetAccountDetails(ctx, token, "1003")
	assert.False(t, notOwned.Success)
	assert.Equal(t, "Access denied: You can only view your own accounts.", notOwned.ErrorMessage)

	missing := engine.GetAccountDetails(ctx, token, "9999")
	assert.False(t, missing.Success)
	assert.Equal(t, "Account not found.", missing.ErrorMessage)
}

func TestGetAccountBalance(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	token := loginAs(t, engine, "customer", "customer123")

	result := engine.GetAccountBalance(ctx, token, "1003")
	require.True(t, result.Success)
	assert.Equal(t, "1003", result.AccountNumber)
	assert.True(t, result.Balance.Equal(decimal.RequireFromString("25000.00")))
	assert.True(t, result.AvailableBalance.Equal(decimal.RequireFromString("25000.00")))
	assert.Equal(t, "USD", result.Currency)
	assert.WithinDuration(t, time.Now(), result.LastUpdated, time.Second)

	notOwned := engine.GetAccountBalance(ctx, token, "1002")
	assert.False(t, notOwned.Success)
	assert.Equal(t, "Access denied: You can only view your own account balances.", notOwned.ErrorMessage)
}

func TestOpenAccount(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	accountNumber, err := engine.OpenAccount(ctx, "CUST002", "Savings", decimal.RequireFromString("300.00"))
	require.NoError(t, err)
	assert.Equal(t, "1005", accountNumber)

	account, err := store.GetAccount(accountNumber)
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, account.AvailableBalance.Equal(account.Balance))
	assert.True(t, account.HoldAmount.IsZero())
	assert.True(t, account.BalancesConsistent())
}
