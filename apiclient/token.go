package apiclient

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

// tokenExpiry returns the exp claim of a JWT access token without verifying it.
// ok is false for opaque tokens or tokens without exp.
func tokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (c *Client) isExpired(token string) bool {
	exp, ok := tokenExpiry(token)
	return ok && !c.nowTime().Before(exp)
}

// TokenSource exposes the client's session as an oauth2.TokenSource. Expired JWT access
// tokens are refreshed through the client before being returned.
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &tokenSource{ctx: ctx, client: c}
}

type tokenSource struct {
	ctx    context.Context
	client *Client
}

func (ts *tokenSource) Token() (*oauth2.Token, error) {
	access, _, err := ts.client.bearer(ts.ctx)
	if err != nil {
		return nil, err
	}
	if access == "" {
		return nil, errors.ErrSessionNotFound
	}
	tok := &oauth2.Token{
		AccessToken: access,
		TokenType:   "Bearer",
	}
	if exp, ok := tokenExpiry(access); ok {
		tok.Expiry = exp
	}
	return tok, nil
}
