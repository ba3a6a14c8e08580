package database

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/nellcorp/bankgate/model"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken is returned when a customer username is already registered.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrEmailTaken is returned when a customer email is already registered.
	ErrEmailTaken = errors.New("email is already registered")
)

const (
	firstAccountNumber = 1001
	firstTransactionID = 1001
	firstPaymentID     = 1001
	firstCustomerID    = 1
)

// MemoryStore is the in-memory authority for one node. Each map is guarded
// by its own lock for the duration of a single read-modify-write step;
// multi-account sections are serialized by the engine's lock registry on top.
type MemoryStore struct {
	accmu             sync.RWMutex
	accounts          map[string]*model.Account
	nextAccountNumber int64

	txmu              sync.RWMutex
	transactions      map[string]*model.Transaction
	nextTransactionID int64
	nextPaymentID     int64

	custmu         sync.RWMutex
	customers      map[string]*model.CustomerProfile
	passwords      map[string]string
	nextCustomerID int64

	sessmu   sync.RWMutex
	sessions map[string]string

	billmu     sync.RWMutex
	billers    map[string]*model.Biller
	categories map[string]*model.BillerCategory
}

// NewMemoryStore returns an empty store with the gateway's id counters at
// their historical starting points.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:          make(map[string]*model.Account),
		nextAccountNumber: firstAccountNumber,
		transactions:      make(map[string]*model.Transaction),
		nextTransactionID: firstTransactionID,
		nextPaymentID:     firstPaymentID,
		customers:         make(map[string]*model.CustomerProfile),
		passwords:         make(map[string]string),
		nextCustomerID:    firstCustomerID,
		sessions:          make(map[string]string),
		billers:           make(map[string]*model.Biller),
		categories:        make(map[string]*model.BillerCategory),
	}
}
