package apiclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// RequestIDHeader carries a unique id per attempt for log correlation.
const RequestIDHeader = "X-Request-ID"

// TransportMiddleware wraps an http.RoundTripper.
type TransportMiddleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to an http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// ChainTransport wraps base with mw so that mw[0] sees the request first.
// A nil base means http.DefaultTransport.
func ChainTransport(base http.RoundTripper, mw ...TransportMiddleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	chained := base
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chained = mw[i](chained)
	}
	return chained
}

// LoggingMiddleware logs each attempt with a method-coloured prefix. Intended for DEV.
func LoggingMiddleware(logger zerolog.Logger) TransportMiddleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)

			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			displayMethod := r.Method
			if color, ok := methodColors[r.Method]; ok {
				displayMethod = color + fmt.Sprintf(" %-7s", r.Method) + ResetColor
			}
			event := logger.Debug()
			if err != nil {
				event = logger.Warn().Err(err)
			}
			event.
				Str("request_id", r.Header.Get(RequestIDHeader)).
				Dur("elapsed", time.Since(start)).
				Msgf("[%s] %s %s%d%s", displayMethod, r.URL.Path, statusColor(status), status, ResetColor)
			return resp, err
		})
	}
}
