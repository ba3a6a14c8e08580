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
	"sort"
	"time"

	"github.com/nellcorp/bankgate/model"
)

// GetTransactionHistory returns one account's transactions within an
// inclusive date range, newest first, paginated. TotalCount reports the
// filtered total independent of the page slice.
func (g *Bankgate) GetTransactionHistory(ctx context.Context, token, accountNumber string, fromDate, toDate time.Time, pageNumber, pageSize int) (result model.TransactionHistoryResult) {
	_, span := tracer.Start(ctx, "Fetching transaction history")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.TransactionHistoryResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get transaction history: %v", err),
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

	account, err := g.datasource.GetAccount(accountNumber)
	if err != nil {
		result.ErrorMessage = "Account not found."
		return result
	}
	if account.CustomerID != customer.CustomerID {
		result.ErrorMessage = "Access denied: You can only view your own transaction history."
		return result
	}

	transactions, err := g.datasource.GetTransactionsByAccount(accountNumber)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Failed to get transaction history: %v", err)
		return result
	}

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.TransactionDate.Before(fromDate) || txn.TransactionDate.After(toDate) {
			continue
		}
		filtered = append(filtered, txn)
	}
	sortNewestFirst(filtered)

	pageNumber, pageSize = g.normalizePage(pageNumber, pageSize)

	result.Success = true
	result.Transactions = paginate(filtered, pageNumber, pageSize)
	result.TotalCount = len(filtered)
	result.PageNumber = pageNumber
	result.PageSize = pageSize
	return result
}

func sortNewestFirst(transactions []model.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].TransactionDate.After(transactions[j].TransactionDate)
	})
}
