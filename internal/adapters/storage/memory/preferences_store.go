package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"pet-adoption/internal/domain/matching"
)

type prefEntry struct {
	pref      matching.Preference
	expiresAt time.Time
}

type PreferenceStore struct {
	mu   sync.RWMutex
	byID map[string]prefEntry
	now  func() time.Time
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{
		byID: make(map[string]prefEntry),
		now:  time.Now,
	}
}

func (s *PreferenceStore) Save(ctx context.Context, sessionID string, pref matching.Preference, ttl time.Duration) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return matching.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)
	s.byID[sessionID] = prefEntry{pref: pref, expiresAt: now.Add(ttl)}
	return nil
}

func (s *PreferenceStore) Get(ctx context.Context, sessionID string) (matching.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[strings.TrimSpace(sessionID)]
	if !ok || !s.now().Before(e.expiresAt) {
		return matching.Preference{}, matching.ErrSessionNotFound
	}
	return e.pref, nil
}

// purgeLocked borra sesiones vencidas; se llama en cada Save para acotar el mapa.
func (s *PreferenceStore) purgeLocked(now time.Time) {
	for id, e := range s.byID {
		if !now.Before(e.expiresAt) {
			delete(s.byID, id)
		}
	}
}
