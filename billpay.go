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

	"github.com/pkg/errors"

	"github.com/nellcorp/bankgate/internal/lock"
	"github.com/nellcorp/bankgate/model"
)

// GetBillerCategories returns the biller catalog's categories.
func (g *Bankgate) GetBillerCategories(ctx context.Context, token string) (result model.BillerCategoryResult) {
	_, span := tracer.Start(ctx, "Listing biller categories")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.BillerCategoryResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get biller categories: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.ErrorMessage = "Invalid authentication token"
		return result
	}

	categories, err := g.datasource.GetBillerCategories()
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Failed to get biller categories: %v", err)
		return result
	}

	result.Success = true
	result.Categories = categories
	return result
}

// GetBillersByCategory returns the active billers in one catalog category.
func (g *Bankgate) GetBillersByCategory(ctx context.Context, token, categoryID string) (result model.BillerListResult) {
	_, span := tracer.Start(ctx, "Listing billers by category")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.BillerListResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get billers: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.ErrorMessage = "Invalid authentication token"
		return result
	}

	if categoryID == "" {
		result.ErrorMessage = "Category ID is required."
		return result
	}

	exists, err := g.datasource.CategoryExists(categoryID)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Failed to get billers: %v", err)
		return result
	}
	if !exists {
		result.ErrorMessage = "Category not found."
		return result
	}

	billers, err := g.datasource.GetBillersByCategory(categoryID)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Failed to get billers: %v", err)
		return result
	}

	result.Success = true
	result.Billers = billers
	return result
}

// PayBill debits the caller's account against a biller catalog entry and
// records one bill-payment transaction. There is no credit leg; the biller
// side is external and untracked.
func (g *Bankgate) PayBill(ctx context.Context, token string, request model.BillPaymentRequest) (result model.BillPaymentResult) {
	ctx, span := tracer.Start(ctx, "Paying bill")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.BillPaymentResult{
			Success:          false,
			Message:          fmt.Sprintf("Bill payment failed: %v", err),
			ValidationErrors: []string{err.Error()},
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.Message = "Invalid authentication token"
		result.ValidationErrors = []string{"Invalid authentication token"}
		return result
	}

	validationErrors := g.validateBillPaymentRequest(request, customer.CustomerID)
	if len(validationErrors) > 0 {
		result.Message = "Bill payment validation failed."
		result.ValidationErrors = validationErrors
		return result
	}

	biller, err := g.datasource.GetBiller(request.BillerID)
	if err != nil {
		result.Message = "Biller not found."
		result.ValidationErrors = []string{"Biller not found."}
		return result
	}

	// Exclusive section over the source account.
	locker := lock.NewLocker(g.locks, request.FromAccountNumber)
	locker.Lock()
	defer locker.Unlock()

	if !g.hasSufficientFunds(request.FromAccountNumber, request.Amount) {
		result.Message = "Insufficient funds in source account."
		result.ValidationErrors = []string{"Insufficient funds in source account."}
		return result
	}

	paymentID := g.datasource.NextPaymentID()

	if err := g.datasource.UpdateAccountBalance(ctx, request.FromAccountNumber, request.Amount, model.TypeBillPayment); err != nil {
		span.RecordError(err)
		if errors.Is(err, model.ErrInsufficientFunds) {
			result.Message = "Insufficient funds in source account."
		} else {
			result.Message = "Bill payment failed due to account update error."
		}
		result.ValidationErrors = []string{result.Message}
		return result
	}

	now := time.Now()
	payment := &model.Transaction{
		TransactionID:        paymentID,
		AccountNumber:        request.FromAccountNumber,
		Type:                 model.TypeBillPayment,
		Amount:               request.Amount,
		Currency:             "USD",
		Description:          fmt.Sprintf("Bill payment to %s - %s", biller.Name, request.Description),
		ReferenceNumber:      request.ReferenceNumber,
		Status:               model.StatusCompleted,
		TransactionDate:      now,
		RelatedAccountNumber: request.AccountNumber,
	}
	if _, err := g.datasource.RecordTransaction(ctx, payment); err != nil {
		result.Message = fmt.Sprintf("Bill payment failed: %v", err)
		result.ValidationErrors = []string{err.Error()}
		return result
	}

	result.Success = true
	result.TransactionID = paymentID
	result.Message = fmt.Sprintf("Bill payment to %s completed successfully.", biller.Name)
	result.PaymentDate = now
	return result
}

// GetBillPaymentHistory returns the caller's bill payments across their
// active accounts, newest first, paginated.
func (g *Bankgate) GetBillPaymentHistory(ctx context.Context, token, customerID string, pageNumber, pageSize int) (result model.BillPaymentHistoryResult) {
	_, span := tracer.Start(ctx, "Fetching bill payment history")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.BillPaymentHistoryResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get bill payment history: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.ErrorMessage = "Invalid authentication token"
		return result
	}
	if customer.CustomerID != customerID {
		result.ErrorMessage = "Access denied: Customer ID mismatch"
		return result
	}

	accounts, err := g.datasource.GetAccountsByCustomer(customerID)
	if err != nil {
		result.ErrorMessage = "Failed to get customer accounts."
		return result
	}
	accountNumbers := make([]string, 0, len(accounts))
	for _, account := range accounts {
		if account.Status == model.AccountActive {
			accountNumbers = append(accountNumbers, account.AccountNumber)
		}
	}

	payments, err := g.datasource.GetBillPayments(accountNumbers)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Failed to get bill payment history: %v", err)
		return result
	}
	sortNewestFirst(payments)

	pageNumber, pageSize = g.normalizePage(pageNumber, pageSize)

	result.Success = true
	result.Payments = paginate(payments, pageNumber, pageSize)
	result.TotalCount = len(payments)
	result.PageNumber = pageNumber
	result.PageSize = pageSize
	return result
}

func (g *Bankgate) validateBillPaymentRequest(request model.BillPaymentRequest, customerID string) []string {
	var errs []string

	if request.FromAccountNumber == "" {
		errs = append(errs, "Source account number is required.")
	}
	if request.BillerID == "" {
		errs = append(errs, "Biller ID is required.")
	}
	if request.AccountNumber == "" {
		errs = append(errs, "Biller account number is required.")
	}
	if !request.Amount.IsPositive() {
		errs = append(errs, "Payment amount must be greater than zero.")
	}

	sourceAccount, err := g.datasource.GetAccount(request.FromAccountNumber)
	if err != nil {
		errs = append(errs, "Source account not found.")
	} else if sourceAccount.CustomerID != customerID {
		errs = append(errs, "You can only pay bills from your own accounts.")
	}

	biller, err := g.datasource.GetBiller(request.BillerID)
	if err != nil {
		errs = append(errs, "Biller not found.")
	} else if !biller.IsActive {
		errs = append(errs, "Biller is not active.")
	} else {
		if request.Amount.LessThan(biller.MinimumAmount) {
			errs = append(errs, fmt.Sprintf("Payment amount must be at least $%s.", biller.MinimumAmount.StringFixed(2)))
		}
		if request.Amount.GreaterThan(biller.MaximumAmount) {
			errs = append(errs, fmt.Sprintf("Payment amount cannot exceed $%s.", biller.MaximumAmount.StringFixed(2)))
		}
	}

	return errs
}
