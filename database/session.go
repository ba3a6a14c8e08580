package database

import "github.com/pkg/errors"

// CreateSession records an active token for a customer. A token maps to
// exactly one customer; last login wins.
func (s *MemoryStore) CreateSession(token, customerID string) error {
	s.sessmu.Lock()
	defer s.sessmu.Unlock()

	s.sessions[token] = customerID
	return nil
}

func (s *MemoryStore) GetSession(token string) (string, error) {
	s.sessmu.RLock()
	defer s.sessmu.RUnlock()

	customerID, ok := s.sessions[token]
	if !ok {
		return "", errors.Wrap(ErrNotFound, "session")
	}
	return customerID, nil
}

// DeleteSession removes the token. Deleting an absent token returns
// ErrNotFound so callers can report "invalid or expired token".
func (s *MemoryStore) DeleteSession(token string) error {
	s.sessmu.Lock()
	defer s.sessmu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return errors.Wrap(ErrNotFound, "session")
	}
	delete(s.sessions, token)
	return nil
}
