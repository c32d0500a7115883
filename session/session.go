// Package session holds the access/refresh token pair the admin client authenticates with.
package session

import (
	"encoding/json"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

// Tokens is the persisted session. It is stored as a single JSON blob and overwritten
// wholesale on every refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// HasRefreshToken reports whether a refresh can be attempted with t.
func (t *Tokens) HasRefreshToken() bool {
	return t != nil && t.RefreshToken != ""
}

// Store persists the token pair for the client.
// GetTokens returns errors.ErrSessionNotFound when nothing is stored.
type Store interface {
	GetTokens() (*Tokens, error)
	SetTokens(tokens *Tokens) error
	Clear() error
}

// Encode serializes the tokens into the stored blob format.
func Encode(t *Tokens) ([]byte, error) {
	if t == nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "session.Encode nil tokens")
	}
	return json.Marshal(t)
}

// Decode parses a stored blob. A blob that cannot be parsed, or that holds neither an
// access token nor a refresh token, is reported as errors.ErrSessionNotFound.
func Decode(data []byte) (*Tokens, error) {
	if len(data) == 0 {
		return nil, errors.ErrSessionNotFound
	}
	var t Tokens
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(errors.ErrSessionNotFound, "session.Decode %v", err)
	}
	if t.AccessToken == "" && t.RefreshToken == "" {
		return nil, errors.ErrSessionNotFound
	}
	return &t, nil
}
