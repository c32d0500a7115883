package apiclient

import (
	"context"
	"net/url"
	"sync"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

// fingerprint identifies "the same logical request": the method plus the URL without
// its query, so paging through a list supersedes the previous page.
func fingerprint(method string, u *url.URL) string {
	stripped := *u
	stripped.RawQuery = ""
	stripped.Fragment = ""
	return method + " " + stripped.String()
}

type inflightEntry struct {
	cancel context.CancelCauseFunc
}

// registry holds at most one cancel handle per fingerprint.
type registry struct {
	entries map[string]*inflightEntry
	lock    sync.Mutex
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*inflightEntry)}
}

// start cancels any request already registered under fp and registers a new one.
// finish must be called once the request completes; it reports whether the request
// was superseded while running.
func (r *registry) start(parent context.Context, fp string) (ctx context.Context, finish func() bool) {
	ctx, cancel := context.WithCancelCause(parent)
	entry := &inflightEntry{cancel: cancel}

	r.lock.Lock()
	if prev, ok := r.entries[fp]; ok {
		prev.cancel(errors.ErrSuperseded)
		delete(r.entries, fp)
	}
	r.entries[fp] = entry
	r.lock.Unlock()

	return ctx, func() bool {
		r.lock.Lock()
		current, ok := r.entries[fp]
		superseded := !ok || current != entry
		if !superseded {
			delete(r.entries, fp)
		}
		r.lock.Unlock()
		cancel(nil)
		return superseded
	}
}

// len is the number of requests currently in flight.
func (r *registry) len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.entries)
}
