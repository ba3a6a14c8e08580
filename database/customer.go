package database

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/nellcorp/bankgate/model"
)

// CreateCustomer stores the profile under the next customer id. Username and
// email uniqueness are enforced here, under the same lock that inserts,
// so concurrent registrations cannot race past the checks.
func (s *MemoryStore) CreateCustomer(profile model.CustomerProfile, passwordDigest string) (model.CustomerProfile, error) {
	s.custmu.Lock()
	defer s.custmu.Unlock()

	for _, existing := range s.customers {
		if strings.EqualFold(existing.Username, profile.Username) {
			return model.CustomerProfile{}, ErrUsernameTaken
		}
		if strings.EqualFold(existing.Email, profile.Email) {
			return model.CustomerProfile{}, ErrEmailTaken
		}
	}

	profile.CustomerID = model.FormatCustomerID(s.nextCustomerID)
	s.nextCustomerID++

	stored := profile
	s.customers[stored.CustomerID] = &stored
	s.passwords[stored.CustomerID] = passwordDigest
	return stored, nil
}

func (s *MemoryStore) GetCustomerByID(id string) (*model.CustomerProfile, error) {
	s.custmu.RLock()
	defer s.custmu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "customer %s", id)
	}
	snapshot := *customer
	return &snapshot, nil
}

func (s *MemoryStore) GetCustomerByUsername(username string) (*model.CustomerProfile, error) {
	s.custmu.RLock()
	defer s.custmu.RUnlock()

	for _, customer := range s.customers {
		if strings.EqualFold(customer.Username, username) {
			snapshot := *customer
			return &snapshot, nil
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "customer %q", username)
}

// UpdateCustomer replaces the mutable contact fields of an existing customer.
// Identity fields (id, username, status, timestamps) are not touched.
func (s *MemoryStore) UpdateCustomer(profile *model.CustomerProfile) error {
	s.custmu.Lock()
	defer s.custmu.Unlock()

	existing, ok := s.customers[profile.CustomerID]
	if !ok {
		return errors.Wrapf(ErrNotFound, "customer %s", profile.CustomerID)
	}
	existing.FirstName = profile.FirstName
	existing.LastName = profile.LastName
	existing.Email = profile.Email
	existing.PhoneNumber = profile.PhoneNumber
	existing.Address = profile.Address
	existing.City = profile.City
	existing.State = profile.State
	existing.PostalCode = profile.PostalCode
	existing.Country = profile.Country
	return nil
}

// UpdateCustomerStatus moves a customer through its lifecycle, e.g. Pending
// to Active after registration review, or Active to Suspended.
func (s *MemoryStore) UpdateCustomerStatus(customerID string, status model.CustomerStatus) error {
	s.custmu.Lock()
	defer s.custmu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return errors.Wrapf(ErrNotFound, "customer %s", customerID)
	}
	customer.Status = status
	return nil
}

func (s *MemoryStore) TouchLastLogin(customerID string, at time.Time) error {
	s.custmu.Lock()
	defer s.custmu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return errors.Wrapf(ErrNotFound, "customer %s", customerID)
	}
	customer.LastLoginAt = at
	return nil
}

func (s *MemoryStore) GetPasswordDigest(customerID string) (string, error) {
	s.custmu.RLock()
	defer s.custmu.RUnlock()

	digest, ok := s.passwords[customerID]
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "credentials for %s", customerID)
	}
	return digest, nil
}

func (s *MemoryStore) UpdatePasswordDigest(customerID, digest string) error {
	s.custmu.Lock()
	defer s.custmu.Unlock()

	if _, ok := s.passwords[customerID]; !ok {
		return errors.Wrapf(ErrNotFound, "credentials for %s", customerID)
	}
	s.passwords[customerID] = digest
	return nil
}
