package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
)

// RequestOptions describes one call. Body is JSON encoded unless Files is set, in which
// case Files and Fields are sent as multipart/form-data.
type RequestOptions struct {
	Query  map[string]any
	Body   any
	Files  []File
	Fields map[string]string
	Header http.Header

	// Public requests never carry the stored bearer and never trigger a refresh.
	Public bool
	// Token overrides the stored access token for this call. No refresh is attempted.
	Token string
	// SkipDedupe lets identical requests run side by side.
	SkipDedupe bool
}

// File is one multipart upload part.
type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// Response is a successful API response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the JSON body into v. Empty bodies leave v untouched.
func (r *Response) Decode(v any) error {
	if v == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrapf(err, "decode response")
	}
	return nil
}

// attempt is the immutable retry descriptor threaded through one logical request.
// refreshed is set once a refresh has been tried for the request, whether or not it
// succeeded, so a request never refreshes twice.
type attempt struct {
	n          int
	refreshed  bool
	refreshErr error
}

func (a attempt) retry() attempt {
	return attempt{n: a.n + 1, refreshed: true}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type encodedBody struct {
	contentType string
	data        []byte
}

func encodeBody(opts *RequestOptions) (*encodedBody, error) {
	if len(opts.Files) > 0 {
		return encodeMultipart(opts.Files, opts.Fields)
	}
	if opts.Body == nil {
		return nil, nil
	}
	data, err := json.Marshal(opts.Body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "encode body: %v", err)
	}
	return &encodedBody{contentType: "application/json", data: data}, nil
}

func encodeMultipart(files []File, fields map[string]string) (*encodedBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, errors.Wrapf(err, "multipart field %s", k)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Name)))
		contentType := f.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(f.Data)
		}
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, errors.Wrapf(err, "multipart file %s", f.Name)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, errors.Wrapf(err, "multipart file %s", f.Name)
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "multipart close")
	}
	return &encodedBody{contentType: w.FormDataContentType(), data: buf.Bytes()}, nil
}

// Send performs method on path. The stored bearer is attached, a 401 is recovered with
// one refresh and retry where possible, and a newer request with the same method and
// URL supersedes this one, in which case the returned error satisfies IsSuperseded.
func (c *Client) Send(ctx context.Context, method, path string, opts *RequestOptions) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	u, err := c.resolve(path, opts.Query)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "%s %s: %v", method, path, err)
	}
	body, err := encodeBody(opts)
	if err != nil {
		return nil, err
	}

	finish := func() bool { return false }
	if !opts.SkipDedupe {
		ctx, finish = c.inflight.start(ctx, fingerprint(method, u))
	}

	resp, state, err := c.execute(ctx, method, u, body, opts)
	if finish() {
		state = StateSuperseded
		resp, err = nil, errors.Wrapf(errors.ErrSuperseded, "%s %s", method, u.Path)
	}

	c.metrics.observeRequest(method, state)
	event := c.logger.Debug()
	if err != nil && state != StateSuperseded {
		event = c.logger.Info().Err(err)
	}
	event.Str("method", method).Str("path", u.Path).Str("state", state.String()).Msg("request finished")
	return resp, err
}

func (c *Client) execute(ctx context.Context, method string, u *url.URL, body *encodedBody, opts *RequestOptions) (*Response, State, error) {
	if opts.Public || opts.Token != "" {
		resp, err := c.do(ctx, method, u, body, opts.Header, opts.Token)
		if err != nil {
			return nil, StateFailedNoRetry, err
		}
		return resp, StateSucceeded, nil
	}

	token, at, err := c.bearer(ctx)
	if err != nil {
		return nil, StateFailedNoRetry, err
	}

	resp, err := c.do(ctx, method, u, body, opts.Header, token)
	if err == nil {
		return resp, StateSucceeded, nil
	}
	if !errors.Is(err, errors.ErrUnauthorized) {
		return nil, StateFailedNoRetry, err
	}
	if at.refreshed {
		if at.refreshErr != nil {
			err = errors.Join(err, at.refreshErr)
		}
		return nil, StateFailedNoRetry, err
	}

	// StateRefreshing
	newToken, rerr := c.recoverToken(ctx, token)
	if rerr != nil {
		if errors.Is(rerr, errors.ErrNoRefreshToken) {
			return nil, StateFailedNoRetry, errors.Join(errors.ErrSessionExpired, err)
		}
		return nil, StateFailedNoRetry, errors.Join(err, rerr)
	}

	at = at.retry()
	c.logger.Debug().Int("attempt", at.n).Str("path", u.Path).Msg("retrying with refreshed token")
	resp, err = c.do(ctx, method, u, body, opts.Header, newToken)
	if err != nil {
		return nil, StateRetriedFailed, err
	}
	return resp, StateRetriedSucceeded, nil
}

// recoverToken obtains a usable access token after sent was rejected. When another request
// already refreshed the session, its token is reused without a new refresh call.
func (c *Client) recoverToken(ctx context.Context, sent string) (string, error) {
	current, err := c.store.GetTokens()
	if err != nil && !errors.Is(err, errors.ErrSessionNotFound) {
		return "", errors.Wrapf(err, "read session")
	}
	if !current.HasRefreshToken() {
		c.handleAuthLoss()
		return "", errors.ErrNoRefreshToken
	}
	if current.AccessToken != "" && current.AccessToken != sent {
		return current.AccessToken, nil
	}

	tokens, err := c.refresh(ctx)
	if err != nil {
		if irrecoverable(err) {
			c.handleAuthLoss()
		}
		return "", err
	}
	return tokens.AccessToken, nil
}

// do performs a single HTTP attempt.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body *encodedBody, header http.Header, token string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body.data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "%s %s: %v", method, u.Path, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, u.Path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s read body", method, u.Path)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newHTTPError(method, u.Path, resp.StatusCode, data)
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// Do sends the request and decodes the response body into out.
func (c *Client) Do(ctx context.Context, method, path string, opts *RequestOptions, out any) error {
	resp, err := c.Send(ctx, method, path, opts)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (c *Client) Get(ctx context.Context, path string, query map[string]any, out any) error {
	return c.Do(ctx, http.MethodGet, path, &RequestOptions{Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, &RequestOptions{Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, &RequestOptions{Body: body}, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, &RequestOptions{Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}
