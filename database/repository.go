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

package database

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nellcorp/bankgate/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
// The default implementation is the in-memory MemoryStore; a persistent
// backing store can be substituted without touching the engine.
type IDataSource interface {
	session     // Interface for session-token operations
	customer    // Interface for customer-related operations
	account     // Interface for account-related operations
	transaction // Interface for transaction-log operations
	biller      // Interface for biller-catalog operations
}

// session defines methods for the token -> customer mapping.
type session interface {
	CreateSession(token, customerID string) error // Records an active token
	GetSession(token string) (string, error)      // Resolves a token to a customer id
	DeleteSession(token string) error             // Removes a token; ErrNotFound if absent
}

// customer defines methods for handling customer records and credentials.
type customer interface {
	CreateCustomer(profile model.CustomerProfile, passwordDigest string) (model.CustomerProfile, error) // Creates a customer, assigning the next customer id
	GetCustomerByID(id string) (*model.CustomerProfile, error)                                          // Retrieves a customer by id
	GetCustomerByUsername(username string) (*model.CustomerProfile, error)                              // Retrieves a customer by username (case-insensitive)
	UpdateCustomer(profile *model.CustomerProfile) error                                                // Updates mutable profile fields
	UpdateCustomerStatus(customerID string, status model.CustomerStatus) error                          // Changes a customer's lifecycle status
	TouchLastLogin(customerID string, at time.Time) error                                               // Updates the last-login timestamp
	GetPasswordDigest(customerID string) (string, error)                                                // Retrieves the stored password digest
	UpdatePasswordDigest(customerID, digest string) error                                               // Replaces the stored password digest
}

// account defines methods for handling accounts. UpdateAccountBalance is the
// single choke point through which all balance changes pass.
type account interface {
	CreateAccount(account model.Account) (model.Account, error)                                                         // Creates an account, assigning the next sequential number
	GetAccount(number string) (*model.Account, error)                                                                   // Retrieves an account by number
	GetAccountsByCustomer(customerID string) ([]model.Account, error)                                                   // Retrieves all accounts owned by a customer
	UpdateAccountBalance(ctx context.Context, number string, amount decimal.Decimal, txnType model.TransactionType) error // Applies one balance mutation atomically
}

// transaction defines methods for the immutable transaction log.
type transaction interface {
	RecordTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) // Appends a record; id collision panics
	GetTransaction(id string) (*model.Transaction, error)                                      // Retrieves a record by id
	GetTransactionsByAccount(number string) ([]model.Transaction, error)                       // Retrieves all records for an account
	GetTransactionsByPrefix(prefix string) ([]model.Transaction, error)                        // Retrieves records whose id starts with prefix
	GetBillPayments(accountNumbers []string) ([]model.Transaction, error)                      // Retrieves bill-payment records across accounts
	NextTransactionID() string                                                                 // Next transfer id (TXN%06d)
	NextPaymentID() string                                                                     // Next payment id (PAY%06d)
}

// biller defines methods for the static biller catalog.
type biller interface {
	CreateBillerCategory(category model.BillerCategory) error      // Adds a category to the catalog
	CreateBiller(b model.Biller) error                             // Adds a biller to the catalog
	GetBillerCategories() ([]model.BillerCategory, error)          // Retrieves all categories
	CategoryExists(categoryID string) (bool, error)                // Reports whether a category exists
	GetBiller(id string) (*model.Biller, error)                    // Retrieves a biller by id
	GetBillersByCategory(categoryID string) ([]model.Biller, error) // Retrieves active billers in a category
}
