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
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/nellcorp/bankgate/internal/lock"
	"github.com/nellcorp/bankgate/model"
)

const (
	debitLegSuffix  = "_DEBIT"
	creditLegSuffix = "_CREDIT"
)

// TransferMoney moves an amount between two accounts as one all-or-nothing
// operation. Both account keys are locked in canonical order before either
// balance is touched; balance reads take the same keys, so a reader can
// never observe the source debited without the destination credited. On a
// partial failure the completed debit is compensated before reporting the
// error.
func (g *Bankgate) TransferMoney(ctx context.Context, token string, request model.TransferRequest) (result model.TransferResult) {
	ctx, span := tracer.Start(ctx, "Transferring money")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.TransferResult{
			Success:          false,
			Message:          fmt.Sprintf("Transfer failed: %v", err),
			ValidationErrors: []string{err.Error()},
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.Message = "Invalid authentication token"
		result.ValidationErrors = []string{"Invalid authentication token"}
		return result
	}

	validationErrors := g.validateTransferRequest(request, customer.CustomerID)
	if len(validationErrors) > 0 {
		result.Message = "Transfer validation failed."
		result.ValidationErrors = validationErrors
		return result
	}

	// Exclusive section over both accounts.
	locker := lock.NewLocker(g.locks, request.FromAccountNumber, request.ToAccountNumber)
	locker.Lock()
	defer locker.Unlock()

	if !g.hasSufficientFunds(request.FromAccountNumber, request.Amount) {
		result.Message = "Insufficient funds in source account."
		result.ValidationErrors = []string{"Insufficient funds in source account."}
		return result
	}

	if _, err := g.datasource.GetAccount(request.ToAccountNumber); err != nil {
		result.Message = "Destination account not found."
		result.ValidationErrors = []string{"Destination account not found."}
		return result
	}

	transferID := g.datasource.NextTransactionID()

	if err := g.datasource.UpdateAccountBalance(ctx, request.FromAccountNumber, request.Amount, model.TypeTransfer); err != nil {
		span.RecordError(err)
		if errors.Is(err, model.ErrInsufficientFunds) {
			result.Message = "Insufficient funds in source account."
		} else {
			result.Message = "Transfer failed due to account update error."
		}
		result.ValidationErrors = []string{result.Message}
		return result
	}

	// The mutation type carries the direction: the credit side of the
	// transfer applies a deposit-typed mutation to the destination.
	if err := g.datasource.UpdateAccountBalance(ctx, request.ToAccountNumber, request.Amount, model.TypeDeposit); err != nil {
		span.RecordError(err)
		// Compensate the completed debit so money is conserved.
		if cerr := g.datasource.UpdateAccountBalance(ctx, request.FromAccountNumber, request.Amount, model.TypeDeposit); cerr != nil {
			logrus.Errorf("transfer %s: compensation of %s failed: %v", transferID, request.FromAccountNumber, cerr)
		}
		result.Message = "Transfer failed due to account update error."
		result.ValidationErrors = []string{result.Message}
		return result
	}

	now := time.Now()
	debitLeg := &model.Transaction{
		TransactionID:        transferID + debitLegSuffix,
		AccountNumber:        request.FromAccountNumber,
		Type:                 model.TypeTransfer,
		Amount:               request.Amount,
		Currency:             "USD",
		Description:          fmt.Sprintf("Transfer to %s: %s", request.ToAccountNumber, request.Description),
		ReferenceNumber:      request.ReferenceNumber,
		Status:               model.StatusCompleted,
		TransactionDate:      now,
		RelatedAccountNumber: request.ToAccountNumber,
	}
	creditLeg := &model.Transaction{
		TransactionID:        transferID + creditLegSuffix,
		AccountNumber:        request.ToAccountNumber,
		Type:                 model.TypeTransfer,
		Amount:               request.Amount,
		Currency:             "USD",
		Description:          fmt.Sprintf("Transfer from %s: %s", request.FromAccountNumber, request.Description),
		ReferenceNumber:      request.ReferenceNumber,
		Status:               model.StatusCompleted,
		TransactionDate:      now,
		RelatedAccountNumber: request.FromAccountNumber,
	}

	if _, err := g.datasource.RecordTransaction(ctx, debitLeg); err != nil {
		result.Message = fmt.Sprintf("Transfer failed: %v", err)
		result.ValidationErrors = []string{err.Error()}
		return result
	}
	if _, err := g.datasource.RecordTransaction(ctx, creditLeg); err != nil {
		result.Message = fmt.Sprintf("Transfer failed: %v", err)
		result.ValidationErrors = []string{err.Error()}
		return result
	}

	result.Success = true
	result.TransactionID = transferID
	result.Message = "Transfer completed successfully."
	result.TransferDate = now
	return result
}

// GetTransferStatus reports the terminal status of a transfer. The caller
// must own one of the two accounts involved.
func (g *Bankgate) GetTransferStatus(ctx context.Context, token, transactionID string) (result model.TransferStatusResult) {
	_, span := tracer.Start(ctx, "Fetching transfer status")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.TransferStatusResult{
			Success:       false,
			StatusMessage: fmt.Sprintf("Failed to get transfer status: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.StatusMessage = "Invalid authentication token"
		return result
	}

	if transactionID == "" {
		result.StatusMessage = "Transaction ID is required."
		return result
	}

	legs, err := g.datasource.GetTransactionsByPrefix(transactionID)
	if err != nil || len(legs) == 0 {
		result.StatusMessage = "Transfer not found."
		return result
	}

	owned := false
	for _, leg := range legs {
		account, err := g.datasource.GetAccount(leg.AccountNumber)
		if err == nil && account.CustomerID == customer.CustomerID {
			owned = true
			break
		}
	}
	if !owned {
		result.StatusMessage = "Access denied: You can only view your own transfers."
		return result
	}

	for _, leg := range legs {
		if strings.HasSuffix(leg.TransactionID, debitLegSuffix) {
			result.Success = true
			result.TransactionID = transactionID
			result.Status = leg.Status
			result.StatusMessage = transferStatusMessage(leg.Status)
			result.LastUpdated = leg.TransactionDate
			return result
		}
	}

	result.StatusMessage = "Transfer status not available."
	return result
}

func (g *Bankgate) validateTransferRequest(request model.TransferRequest, customerID string) []string {
	var errs []string

	if request.FromAccountNumber == "" {
		errs = append(errs, "Source account number is required.")
	}
	if request.ToAccountNumber == "" {
		errs = append(errs, "Destination account number is required.")
	}
	if !request.Amount.IsPositive() {
		errs = append(errs, "Transfer amount must be greater than zero.")
	}
	if request.FromAccountNumber != "" && request.FromAccountNumber == request.ToAccountNumber {
		errs = append(errs, "Cannot transfer to the same account.")
	}

	sourceAccount, err := g.datasource.GetAccount(request.FromAccountNumber)
	if err != nil {
		errs = append(errs, "Source account not found.")
	} else if sourceAccount.CustomerID != customerID {
		errs = append(errs, "You can only transfer from your own accounts.")
	}

	return errs
}

func transferStatusMessage(status model.TransactionStatus) string {
	switch status {
	case model.StatusPending:
		return "Transfer is pending processing."
	case model.StatusCompleted:
		return "Transfer completed successfully."
	case model.StatusFailed:
		return "Transfer failed."
	case model.StatusCancelled:
		return "Transfer was cancelled."
	case model.StatusReversed:
		return "Transfer was reversed."
	default:
		return "Unknown status."
	}
}
