package config

import "time"

type ClientConfig interface {
	GetAPIURL() string
	GetRequestTimeout() time.Duration
	GetRedirectDelay() time.Duration
	GetLoginPath() string
	GetRefreshPath() string
}

type Client struct {
	values
}

var _ ClientConfig = Client{}

func (c Client) GetAPIURL() string {
	return c.get("APP_API_URL", "http://localhost:3000/api")
}

func (c Client) GetRequestTimeout() time.Duration {
	return c.duration("REQUEST_TIMEOUT", 25*time.Second)
}

// GetRedirectDelay is how long the login redirect waits so the expiry notice can be read.
func (c Client) GetRedirectDelay() time.Duration {
	return c.duration("REDIRECT_DELAY", 2*time.Second)
}

func (c Client) GetLoginPath() string {
	return c.get("LOGIN_PATH", "/login")
}

func (c Client) GetRefreshPath() string {
	return c.get("REFRESH_PATH", "/auth/refresh")
}
