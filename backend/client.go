// Package backend is the typed client for the finsight analysis service.
// All computation (health scoring, risk scoring, report generation) happens
// on the backend; this client only performs the credential exchange and
// token-bearing data requests the dashboard pages need.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/finsight/dashboard/internal/config"
	"github.com/finsight/dashboard/internal/errors"
)

const contentTypeJSON = "application/json"

type Client struct {
	baseURL string
	http    *http.Client
	tokens  oauth2.TokenSource
}

// New creates a backend client. tokens supplies the bearer credential for
// authenticated endpoints; Login and Register work without it.
func New(cfg config.BackendConfig, tokens oauth2.TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.GetAPIBaseURL(), "/"),
		http:    &http.Client{Timeout: cfg.GetAPITimeout()},
		tokens:  tokens,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("[Client.newRequest] %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// doJSON sends an unauthenticated request and decodes a 2xx JSON body into out.
func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client] %s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client] decode %s %s response", req.Method, req.URL.Path)
	}
	return nil
}

// doAuthed attaches the current access token and sends the request. A 401
// maps to errors.ErrUnauthorized so callers can distinguish a rejected
// credential from an ordinary fetch failure.
func (c *Client) doAuthed(req *http.Request, out any) error {
	token, err := c.tokens.Token()
	if err != nil {
		return errors.Wrapf(err, "[Client] no credential for %s %s", req.Method, req.URL.Path)
	}
	token.SetAuthHeader(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client] %s %s", req.Method, req.URL.Path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := apiError(resp)
		return errors.Wrapf(errors.ErrUnauthorized, "[Client] %s %s: %v", req.Method, req.URL.Path, apiErr)
	}
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client] decode %s %s response", req.Method, req.URL.Path)
	}
	return nil
}

func (c *Client) getAuthed(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.doAuthed(req, out)
}

func (c *Client) postAuthed(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "[Client] encode %s request", path)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	return c.doAuthed(req, out)
}

func encodeJSON(in any) (io.Reader, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrapf(err, "[Client] encode request body")
	}
	return bytes.NewReader(body), nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "[Client] encode %s request", path)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	return c.doJSON(req, out)
}
