package database

import (
	"github.com/pkg/errors"

	"github.com/nellcorp/bankgate/model"
)

func (s *MemoryStore) CreateBillerCategory(category model.BillerCategory) error {
	s.billmu.Lock()
	defer s.billmu.Unlock()

	stored := category
	s.categories[stored.CategoryID] = &stored
	return nil
}

func (s *MemoryStore) CreateBiller(b model.Biller) error {
	s.billmu.Lock()
	defer s.billmu.Unlock()

	stored := b
	s.billers[stored.BillerID] = &stored
	return nil
}

func (s *MemoryStore) GetBillerCategories() ([]model.BillerCategory, error) {
	s.billmu.RLock()
	defer s.billmu.RUnlock()

	var categories []model.BillerCategory
	for _, category := range s.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (s *MemoryStore) CategoryExists(categoryID string) (bool, error) {
	s.billmu.RLock()
	defer s.billmu.RUnlock()

	_, ok := s.categories[categoryID]
	return ok, nil
}

func (s *MemoryStore) GetBiller(id string) (*model.Biller, error) {
	s.billmu.RLock()
	defer s.billmu.RUnlock()

	b, ok := s.billers[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "biller %s", id)
	}
	snapshot := *b
	return &snapshot, nil
}

// GetBillersByCategory returns only active billers; inactive catalog entries
// are hidden from customers.
func (s *MemoryStore) GetBillersByCategory(categoryID string) ([]model.Biller, error) {
	s.billmu.RLock()
	defer s.billmu.RUnlock()

	var billers []model.Biller
	for _, b := range s.billers {
		if b.CategoryID == categoryID && b.IsActive {
			billers = append(billers, *b)
		}
	}
	return billers, nil
}
