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
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/nellcorp/bankgate/database"
	"github.com/nellcorp/bankgate/model"
)

// SeedDemoData loads the demo dataset: two customers with known credentials
// (admin/admin123 and customer/customer123), four funded accounts, a sample
// transaction history, and the biller catalog. Intended for demos and tests,
// gated by the seed_demo_data config flag in production.
func SeedDemoData(ctx context.Context, db database.IDataSource) error {
	now := time.Now()

	if err := seedCustomers(db, now); err != nil {
		return err
	}
	if err := seedAccounts(db, now); err != nil {
		return err
	}
	if err := seedTransactions(ctx, db, now); err != nil {
		return err
	}
	return seedBillers(db)
}

func seedCustomers(db database.IDataSource, now time.Time) error {
	customers := []struct {
		profile  model.CustomerProfile
		password string
	}{
		{
			profile: model.CustomerProfile{
				Username:    "admin",
				FirstName:   "John",
				LastName:    "Admin",
				Email:       "admin@bank.com",
				PhoneNumber: "+1234567890",
				DateOfBirth: time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
				Address:     "123 Main St",
				City:        "New York",
				State:       "NY",
				PostalCode:  "10001",
				Country:     "USA",
				Status:      model.CustomerActive,
				CreatedAt:   now.AddDate(0, 0, -30),
				LastLoginAt: now,
			},
			password: "admin123",
		},
		{
			profile: model.CustomerProfile{
				Username:    "customer",
				FirstName:   "Jane",
				LastName:    "Customer",
				Email:       "jane@email.com",
				PhoneNumber: "+1987654321",
				DateOfBirth: time.Date(1990, 8, 22, 0, 0, 0, 0, time.UTC),
				Address:     "456 Oak Ave",
				City:        "Los Angeles",
				State:       "CA",
				PostalCode:  "90210",
				Country:     "USA",
				Status:      model.CustomerActive,
				CreatedAt:   now.AddDate(0, 0, -15),
				LastLoginAt: now,
			},
			password: "customer123",
		},
	}

	for _, c := range customers {
		digest, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := db.CreateCustomer(c.profile, string(digest)); err != nil {
			return err
		}
	}
	return nil
}

func seedAccounts(db database.IDataSource, now time.Time) error {
	accounts := []struct {
		customerID  string
		accountType string
		balance     string
		openedDays  int
	}{
		{"CUST001", "Savings", "50000.00", -30},
		{"CUST001", "Checking", "15000.00", -25},
		{"CUST002", "Savings", "25000.00", -15},
		{"CUST002", "Checking", "5000.00", -10},
	}

	for _, a := range accounts {
		balance := decimal.RequireFromString(a.balance)
		_, err := db.CreateAccount(model.Account{
			CustomerID:       a.customerID,
			AccountType:      a.accountType,
			Balance:          balance,
			AvailableBalance: balance,
			HoldAmount:       decimal.Zero,
			Currency:         "USD",
			Status:           model.AccountActive,
			OpenedAt:         now.AddDate(0, 0, a.openedDays),
			LastActivityAt:   now.AddDate(0, 0, -1),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// seedTransactions records the historical entries behind the seeded
// balances. Balances are not mutated here; they already reflect these
// transactions.
func seedTransactions(ctx context.Context, db database.IDataSource, now time.Time) error {
	samples := []struct {
		accountNumber  string
		txnType        model.TransactionType
		amount         string
		description    string
		reference      string
		relatedAccount string
		daysAgo        int
	}{
		{"1001", model.TypeDeposit, "50000.00", "Initial deposit", "REF001", "", 28},
		{"1002", model.TypeDeposit, "15000.00", "Initial deposit", "REF002", "", 24},
		{"1002", model.TypeWithdrawal, "500.00", "ATM withdrawal", "REF003", "", 12},
		{"1002", model.TypeTransfer, "1000.00", "Transfer to savings", "REF004", "1001", 9},
		{"1003", model.TypeDeposit, "25000.00", "Initial deposit", "REF005", "", 14},
		{"1004", model.TypeDeposit, "5000.00", "Initial deposit", "REF006", "", 8},
		{"1004", model.TypeWithdrawal, "200.00", "ATM withdrawal", "REF007", "", 5},
		{"1004", model.TypeBillPayment, "150.00", "Electricity bill payment", "REF008", "", 2},
	}

	for _, s := range samples {
		txn := &model.Transaction{
			TransactionID:        db.NextTransactionID(),
			AccountNumber:        s.accountNumber,
			Type:                 s.txnType,
			Amount:               decimal.RequireFromString(s.amount),
			Currency:             "USD",
			Description:          s.description,
			ReferenceNumber:      s.reference,
			Status:               model.StatusCompleted,
			TransactionDate:      now.AddDate(0, 0, -s.daysAgo),
			RelatedAccountNumber: s.relatedAccount,
		}
		if _, err := db.RecordTransaction(ctx, txn); err != nil {
			return err
		}
	}
	return nil
}

func seedBillers(db database.IDataSource) error {
	categories := []model.BillerCategory{
		{CategoryID: "UTILITIES", Name: "Utilities", Description: "Electricity, water, gas, and other utility bills", IconURL: "/icons/utilities.png"},
		{CategoryID: "TELECOM", Name: "Telecommunications", Description: "Phone, internet, and cable bills", IconURL: "/icons/telecom.png"},
		{CategoryID: "INSURANCE", Name: "Insurance", Description: "Health, auto, and home insurance payments", IconURL: "/icons/insurance.png"},
		{CategoryID: "CREDIT_CARD", Name: "Credit Cards", Description: "Credit card payments", IconURL: "/icons/credit-card.png"},
	}
	for _, category := range categories {
		if err := db.CreateBillerCategory(category); err != nil {
			return err
		}
	}

	billers := []model.Biller{
		{BillerID: "ELEC001", CategoryID: "UTILITIES", Name: "City Power Company", Description: "Electricity bill payments", AccountNumberFormat: "XXXXXXXXXX", MinimumAmount: decimal.RequireFromString("10.00"), MaximumAmount: decimal.RequireFromString("10000.00"), Currency: "USD", IsActive: true},
		{BillerID: "WATER001", CategoryID: "UTILITIES", Name: "Metro Water Services", Description: "Water and sewer bill payments", AccountNumberFormat: "XXXXXXXXX", MinimumAmount: decimal.RequireFromString("5.00"), MaximumAmount: decimal.RequireFromString("5000.00"), Currency: "USD", IsActive: true},
		{BillerID: "INTERNET001", CategoryID: "TELECOM", Name: "FastNet Internet", Description: "Internet service payments", AccountNumberFormat: "XXXXXXXX", MinimumAmount: decimal.RequireFromString("20.00"), MaximumAmount: decimal.RequireFromString("2000.00"), Currency: "USD", IsActive: true},
		{BillerID: "PHONE001", CategoryID: "TELECOM", Name: "MobileConnect", Description: "Mobile phone bill payments", AccountNumberFormat: "XXXXXXXXXX", MinimumAmount: decimal.RequireFromString("15.00"), MaximumAmount: decimal.RequireFromString("1500.00"), Currency: "USD", IsActive: true},
		{BillerID: "HEALTH001", CategoryID: "INSURANCE", Name: "HealthFirst Insurance", Description: "Health insurance premium payments", AccountNumberFormat: "XXXXXXXXX", MinimumAmount: decimal.RequireFromString("50.00"), MaximumAmount: decimal.RequireFromString("5000.00"), Currency: "USD", IsActive: true},
		{BillerID: "CC001", CategoryID: "CREDIT_CARD", Name: "Global Credit Card", Description: "Credit card payments", AccountNumberFormat: "XXXXXXXXXXXXXXXX", MinimumAmount: decimal.RequireFromString("10.00"), MaximumAmount: decimal.RequireFromString("50000.00"), Currency: "USD", IsActive: true},
	}
	for _, b := range billers {
		if err := db.CreateBiller(b); err != nil {
			return err
		}
	}
	return nil
}
