package apiclient

import "time"

// handleAuthLoss tears down the session after an unrecoverable 401: the store is
// cleared, the user is notified, and the navigator is sent to the login path once the
// redirect delay has passed. Concurrent losses schedule a single redirect.
func (c *Client) handleAuthLoss() {
	if err := c.store.Clear(); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear session")
	}
	if !c.redirectPending.CompareAndSwap(false, true) {
		return
	}

	c.logger.Warn().Msg("session lost, redirecting to login")
	c.notifier.Notify(SessionExpiredMessage)

	if c.navigator.CurrentPath() == c.loginPath {
		c.redirectPending.Store(false)
		return
	}
	c.redirects.Add(1)
	time.AfterFunc(c.redirectDelay, func() {
		defer c.redirects.Done()
		defer c.redirectPending.Store(false)
		c.navigator.Navigate(c.loginPath)
	})
}
