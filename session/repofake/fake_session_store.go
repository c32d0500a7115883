package sessionrepofake

import (
	"sync"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
	"github.com/jrsteele09/go-hotel-admin/session"
)

var _ session.Store = (*FakeSessionStore)(nil)

// FakeSessionStore keeps the token pair in memory.
type FakeSessionStore struct {
	tokens *session.Tokens
	writes int
	clears int
	lock   sync.RWMutex
}

func NewFakeSessionStore() *FakeSessionStore {
	return &FakeSessionStore{}
}

// NewFakeSessionStoreWith returns a store pre-seeded with tokens.
func NewFakeSessionStoreWith(accessToken, refreshToken string) *FakeSessionStore {
	return &FakeSessionStore{
		tokens: &session.Tokens{AccessToken: accessToken, RefreshToken: refreshToken},
	}
}

func (s *FakeSessionStore) GetTokens() (*session.Tokens, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	if s.tokens == nil {
		return nil, errors.ErrSessionNotFound
	}
	t := *s.tokens
	return &t, nil
}

func (s *FakeSessionStore) SetTokens(tokens *session.Tokens) error {
	if tokens == nil {
		return errors.Wrapf(errors.ErrInvalidRequest, "SetTokens nil tokens")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	t := *tokens
	s.tokens = &t
	s.writes++
	return nil
}

func (s *FakeSessionStore) Clear() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.tokens = nil
	s.clears++
	return nil
}

// Writes returns how many times SetTokens succeeded.
func (s *FakeSessionStore) Writes() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.writes
}

// Clears returns how many times Clear was called.
func (s *FakeSessionStore) Clears() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.clears
}
