package hotel

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-hotel-admin/apiclient"
	"github.com/jrsteele09/go-hotel-admin/internal/errors"
	"github.com/jrsteele09/go-hotel-admin/session"
)

type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService logs the admin in and out and reads the current profile.
type AuthService struct {
	r Requester
}

// Login authenticates and persists the returned token pair.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.EmailOrPhone == "" || req.Password == "" {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "email or phone and password are required")
	}
	var resp LoginResponse
	err := s.r.Do(ctx, http.MethodPost, PathLogin, &apiclient.RequestOptions{Body: req, Public: true}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.Wrapf(errors.ErrInternal, "login response has no access token")
	}
	if err := s.r.Store().SetTokens(&session.Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}); err != nil {
		return nil, errors.Wrapf(err, "persist session")
	}
	return &resp, nil
}

// Logout tells the server to end the session and always clears the local one.
func (s *AuthService) Logout(ctx context.Context) error {
	serverErr := s.r.Do(ctx, http.MethodPost, PathLogout, nil, nil)
	if err := s.r.Store().Clear(); err != nil {
		return errors.Join(serverErr, errors.Wrapf(err, "clear session"))
	}
	if errors.Is(serverErr, errors.ErrSessionExpired) {
		return nil
	}
	return serverErr
}

func (s *AuthService) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := get(ctx, s.r, PathProfile, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh exchanges the stored refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context) (*session.Tokens, error) {
	return s.r.Refresh(ctx)
}

// IsLoggedIn reports whether an access token is stored.
func (s *AuthService) IsLoggedIn() bool {
	tokens, err := s.r.Store().GetTokens()
	return err == nil && tokens.AccessToken != ""
}
