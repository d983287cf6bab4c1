// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package api realizes the core gateway ports over the car2go REST
// APIs. One Client instance adapts all three surfaces (auth, bookings,
// and links); per-endpoint logic lives in sibling files while this
// file keeps the shared request plumbing: bearer authorization,
// request correlation, timeouts, and the decoding of the gin-style
// {"detail": ...} error documents.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/car2go-client/pkg/core/cerr"
	"github.com/momeni/car2go-client/pkg/core/gateway"
	"github.com/momeni/car2go-client/pkg/core/log"
)

// DefaultTimeout bounds every request when no timeout is configured.
// The original web client had no timeout at all and a hung request
// hung its loading state forever; bounding it breaks no documented
// contract because every terminal outcome was already handled.
const DefaultTimeout = 10 * time.Second

// Client is an HTTP adapter of the car2go server collaborator.
// It reifies the gateway.Auth, gateway.Bookings, and gateway.Links
// interfaces. A Client is safe for concurrent use.
type Client struct {
	base string
	hc   *http.Client
}

// Compile-time checks that Client realizes all gateway ports.
var (
	_ gateway.Auth     = (*Client)(nil)
	_ gateway.Bookings = (*Client)(nil)
	_ gateway.Links    = (*Client)(nil)
)

// New instantiates a Client for the server at baseURL. A non-positive
// timeout selects DefaultTimeout.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf(
			"unsupported base URL scheme: %q", u.Scheme,
		)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base URL %q has no host", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: timeout},
	}, nil
}

// do dispatches one request and returns its response. The credential,
// if non-empty, is attached as a bearer authorization header and every
// request carries a fresh X-Request-ID correlation identifier.
// A failure of the network call itself (including a timeout) is
// reported as a cerr.KindServiceUnavailable error; non-2xx responses
// are not inspected here as their meaning is endpoint-specific.
// The caller owns closing the response body.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	cred gateway.Credential,
	contentType string,
	body io.Reader,
) (*http.Response, error) {
	u := c.base + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s %s request: %w", method, u, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cred != "" {
		req.Header.Set("Authorization", "Bearer "+string(cred))
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, cerr.ServiceUnavailable(
			0, fmt.Errorf("%s %s: %w", method, u, err),
		)
	}
	log.Debug(
		ctx, "request completed",
		log.URL("url", u),
		log.Status("status", resp.StatusCode),
	)
	return resp, nil
}

// getJSON dispatches a bearer-authorized GET request for the path API
// and decodes its 2xx response body into out. A non-2xx response is
// reported as a plain error carrying the server detail message, so
// callers may classify it per their own failure policy.
func (c *Client) getJSON(
	ctx context.Context,
	path string,
	cred gateway.Credential,
	out any,
) error {
	resp, err := c.do(ctx, http.MethodGet, path, cred, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !is2xx(resp.StatusCode) {
		return fmt.Errorf(
			"GET %s: [%d] %w", path, resp.StatusCode, detail(resp),
		)
	}
	return decode(resp, out)
}

// decode decodes the JSON response body of resp into out.
func decode(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// detail extracts the server-provided error message of a non-2xx
// response. The car2go server reports errors as {"detail": <message>}
// documents where the message is usually a string, but may be an
// arbitrary document for request validation errors. Unparseable or
// empty bodies fall back to the HTTP status text.
func detail(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(body) > 0 {
		var doc struct {
			Detail json.RawMessage `json:"detail"`
		}
		if err := json.Unmarshal(body, &doc); err == nil &&
			len(doc.Detail) > 0 {
			var msg string
			if err := json.Unmarshal(doc.Detail, &msg); err == nil {
				return fmt.Errorf("%s", msg)
			}
			return fmt.Errorf("%s", string(doc.Detail))
		}
	}
	return fmt.Errorf("%s", http.StatusText(resp.StatusCode))
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
