package apiclient

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
	"github.com/jrsteele09/go-hotel-admin/session"
)

const refreshKey = "refresh"

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// bearer returns the access token to send. When the stored JWT has already expired a
// refresh is tried first and recorded in the returned attempt. A refresh token the
// server rejects ends the session before the request is sent.
func (c *Client) bearer(ctx context.Context) (string, attempt, error) {
	tokens, err := c.store.GetTokens()
	if errors.Is(err, errors.ErrSessionNotFound) {
		return "", attempt{}, nil
	}
	if err != nil {
		return "", attempt{}, errors.Wrapf(err, "read session")
	}
	if !c.isExpired(tokens.AccessToken) || !tokens.HasRefreshToken() {
		return tokens.AccessToken, attempt{}, nil
	}

	c.logger.Debug().Msg("access token expired, refreshing before request")
	refreshed, err := c.refresh(ctx)
	if err != nil {
		if irrecoverable(err) {
			c.handleAuthLoss()
			return "", attempt{refreshed: true}, errors.Join(errors.ErrSessionExpired, err)
		}
		// send the stale token anyway; a 401 is surfaced without a second refresh
		c.logger.Warn().Err(err).Msg("proactive refresh failed")
		return tokens.AccessToken, attempt{refreshed: true, refreshErr: err}, nil
	}
	return refreshed.AccessToken, attempt{refreshed: true}, nil
}

// refresh exchanges the stored refresh token for a new pair. Concurrent callers share
// one in-flight call, and a caller leaving early does not cancel it for the others.
func (c *Client) refresh(ctx context.Context) (*session.Tokens, error) {
	ch := c.refreshGroup.DoChan(refreshKey, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		tokens, err := c.executeRefresh(rctx)
		c.metrics.observeRefresh(err)
		return tokens, err
	})

	select {
	case <-ctx.Done():
		return nil, context.Cause(ctx)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*session.Tokens), nil
	}
}

func (c *Client) executeRefresh(ctx context.Context) (*session.Tokens, error) {
	current, err := c.store.GetTokens()
	if err != nil && !errors.Is(err, errors.ErrSessionNotFound) {
		return nil, errors.Wrapf(err, "read session")
	}
	if !current.HasRefreshToken() {
		return nil, errors.ErrNoRefreshToken
	}

	u, err := c.resolve(c.refreshPath, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "refresh url")
	}
	body, err := encodeBody(&RequestOptions{Body: refreshRequest{RefreshToken: current.RefreshToken}})
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPost, u, body, nil, "")
	if err != nil {
		return nil, errors.Join(errors.ErrRefreshFailed, err)
	}

	var out refreshResponse
	if err := resp.Decode(&out); err != nil {
		return nil, errors.Join(errors.ErrRefreshFailed, err)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		return nil, errors.Wrapf(errors.ErrRefreshFailed, "refresh response missing tokens")
	}

	tokens := &session.Tokens{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}
	if err := c.store.SetTokens(tokens); err != nil {
		return nil, errors.Wrapf(err, "persist refreshed session")
	}
	c.logger.Info().Msg("session refreshed")
	return tokens, nil
}

// Refresh forces a token refresh using the stored refresh token.
func (c *Client) Refresh(ctx context.Context) (*session.Tokens, error) {
	return c.refresh(ctx)
}

// irrecoverable reports whether a refresh failure means the refresh token itself was
// rejected, as opposed to a transient failure.
func irrecoverable(err error) bool {
	if errors.Is(err, errors.ErrNoRefreshToken) {
		return true
	}
	status := StatusCode(err)
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
