package insightstore

func (s *Store) getMemory(category string) (CachedInsight, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byCat[category]
	return rec, ok, nil
}

// insertMemory mirrors the database's uniqueness constraint: the first
// writer wins and later writers are handed the existing record.
func (s *Store) insertMemory(rec CachedInsight) CachedInsight {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byCat[rec.Category]; ok {
		return existing
	}
	s.byCat[rec.Category] = rec
	return rec
}
