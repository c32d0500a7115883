// Package apiclient is the authenticated REST client for the hotel admin API.
//
// Every request carries the stored bearer token. A 401 triggers at most one silent
// refresh followed by a single retry, and starting a request cancels any earlier
// in-flight request with the same method and URL.
package apiclient

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
	"github.com/jrsteele09/go-hotel-admin/session"
)

const (
	defaultTimeout       = 25 * time.Second
	defaultRedirectDelay = 2 * time.Second
	defaultLoginPath     = "/login"
	defaultRefreshPath   = "/auth/refresh"

	// SessionExpiredMessage is shown to the user when the session cannot be recovered.
	SessionExpiredMessage = "Session expired. Please log in again."
)

// Navigator moves the application to another route.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

type noopNavigator struct{}

func (noopNavigator) CurrentPath() string { return "" }
func (noopNavigator) Navigate(string)     {}

// Client sends authenticated requests to the admin API.
type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	store         session.Store
	navigator     Navigator
	notifier      Notifier
	logger        zerolog.Logger
	metrics       *Metrics
	middleware    []TransportMiddleware
	timeout       time.Duration
	redirectDelay time.Duration
	loginPath     string
	refreshPath   string
	nowTime       func() time.Time // injectable for testing

	inflight        *registry
	refreshGroup    singleflight.Group
	redirectPending atomic.Bool
	redirects       sync.WaitGroup
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Its transport is wrapped, not replaced.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds each attempt of a request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithNavigator(n Navigator) Option {
	return func(c *Client) {
		c.navigator = n
	}
}

func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithRedirectDelay sets how long the login redirect waits after the expiry notice.
func WithRedirectDelay(d time.Duration) Option {
	return func(c *Client) {
		c.redirectDelay = d
	}
}

func WithLoginPath(path string) Option {
	return func(c *Client) {
		c.loginPath = path
	}
}

func WithRefreshPath(path string) Option {
	return func(c *Client) {
		c.refreshPath = path
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTransportMiddleware wraps the HTTP transport, outermost first.
func WithTransportMiddleware(mw ...TransportMiddleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, mw...)
	}
}

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(c *Client) {
		c.nowTime = nowFunc
	}
}

// New creates a Client for the API rooted at baseURL, authenticating with the
// tokens held by store.
func New(baseURL string, store session.Store, options ...Option) (*Client, error) {
	if store == nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "[apiclient.New] session store is required")
	}
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, errors.Wrapf(err, "[apiclient.New] invalid base url %q", baseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "[apiclient.New] base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:       base,
		store:         store,
		navigator:     noopNavigator{},
		logger:        zerolog.Nop(),
		timeout:       defaultTimeout,
		redirectDelay: defaultRedirectDelay,
		loginPath:     defaultLoginPath,
		refreshPath:   defaultRefreshPath,
		nowTime:       time.Now,
		inflight:      newRegistry(),
	}
	for _, opt := range options {
		opt(c)
	}

	if c.notifier == nil {
		c.notifier = NotifierFunc(func(message string) {
			c.logger.Warn().Msg(message)
		})
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}

	hc := http.Client{}
	if c.httpClient != nil {
		hc = *c.httpClient
	}
	hc.Transport = ChainTransport(hc.Transport, c.middleware...)
	c.httpClient = &hc

	return c, nil
}

// Wait blocks until any scheduled login redirect has run. Short-lived programs call
// it before exiting so the navigator is not skipped.
func (c *Client) Wait() {
	c.redirects.Wait()
}

// Store returns the session store the client authenticates with.
func (c *Client) Store() session.Store {
	return c.store
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}
