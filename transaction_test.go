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

	"github.com/nellcorp/bankgate/database"
	"github.com/nellcorp/bankgate/model"
)

func recordDeposits(t *testing.T, store *database.MemoryStore, accountNumber string, count int, base time.Time) {
	t.Helper()
	for i := 0; i < count; i++ {
		_, err := store.RecordTransaction(context.Background(), &model.Transaction{
			TransactionID:   store.NextTransactionID(),
			AccountNumber:   accountNumber,
			Type:            model.TypeDeposit,
			Amount:          decimal.RequireFromString("10.00"),
			Currency:        "USD",
			Description:     "Deposit",
			Status:          model.StatusCompleted,
			TransactionDate: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestGetTransactionHistoryPagination(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()
	token := loginAs(t, engine, "customer", "customer123")

	accountNumber, err := engine.OpenAccount(ctx, "CUST002", "Savings", decimal.RequireFromString("150.00"))
	require.NoError(t, err)

	base := time.Now().Add(-1 * time.Hour)
	recordDeposits(t, store, accountNumber, 15, base)

	from := time.Now().AddDate(0, 0, -7)
	to := time.Now()

	pageTwo := engine.GetTransactionHistory(ctx, token, accountNumber, from, to, 2, 10)
	require.True(t, pageTwo.Success, "history failed: %s", pageTwo.ErrorMessage)
	assert.Len(t, pageTwo.Transactions, 5)
	assert.Equal(t, 15, pageTwo.TotalCount)
	assert.Equal(t, 2, pageTwo.PageNumber)
	assert.Equal(t, 10, pageTwo.PageSize)

	pageOne := engine.GetTransactionHistory(ctx, token, accountNumber, from, to, 1, 10)
	require.True(t, pageOne.Success)
	assert.Len(t, pageOne.Transactions, 10)
	assert.Equal(t, 15, pageOne.TotalCount)

	// Newest first across the whole set.
	newest := pageOne.Transactions[0]
	oldest := pageTwo.Transactions[len(pageTwo.Transactions)-1]
	assert.True(t, newest.TransactionDate.After(oldest.TransactionDate))
}

func TestGetTransactionHistoryDateFilter(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()
	token := loginAs(t, engine, "customer", "customer123")

	accountNumber, err := engine.OpenAccount(ctx, "CUST002", "Checking", decimal.Zero)
	require.NoError(t, err)

	// Five recent entries plus five far in the past.
	recordDeposits(t, store, accountNumber, 5, time.Now().Add(-1*time.Hour))
	recordDeposits(t, store, accountNumber, 5, time.Now().AddDate(0, -6, 0))

	from := time.Now().AddDate(0, 0, -7)
	to := time.Now()

	result := engine.GetTransactionHistory(ctx, token, accountNumber, from, to, 1, 20)
	require.True(t, result.Success)
	assert.Equal(t, 5, result.TotalCount)
	assert.Len(t, result.Transactions, 5)
}

func TestGetTransactionHistoryAccessDenied(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := loginAs(t, engine, "customer", "customer123")

	// Account 1001 belongs to CUST001.
	result := engine.GetTransactionHistory(context.Background(), token, "1001", time.Now().AddDate(-1, 0, 0), time.Now(), 1, 20)
	assert.False(t, result.Success)
	assert.Equal(t, "Access denied: You can only view your own transaction history.", result.ErrorMessage)
}

func TestGetTransactionHistoryUnknownAccount(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := loginAs(t, engine, "customer", "customer123")

	result := engine.GetTransactionHistory(context.Background(), token, "9999", time.Now().AddDate(-1, 0, 0), time.Now(), 1, 20)
	assert.False(t, result.Success)
	assert.Equal(t, "Account not found.", result.ErrorMessage)

	missing := engine.GetTransactionHistory(context.Background(), token, "", time.Now().AddDate(-1, 0, 0), time.Now(), 1, 20)
	assert.False(t, missing.Success)
	assert.Equal(t, "Account number is required.", missing.ErrorMessage)
}
