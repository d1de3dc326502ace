package userstore

import "errors"

func (s *Store) upsertMemory(rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byID[rec.ExternalID]; ok {
		rec.Category = existing.Category
	}
	s.byID[rec.ExternalID] = rec
	return rec
}

func (s *Store) getMemory(externalID string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[externalID]
	return rec, ok, nil
}

func (s *Store) setCategoryMemory(externalID, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[externalID]
	if !ok {
		return errors.New("userstore: no such user")
	}
	rec.Category = category
	s.byID[externalID] = rec
	return nil
}
