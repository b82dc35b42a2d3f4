// Package api implements an authenticated session against the Nessus
// management REST API: login, token-bearing requests, typed response
// decoding, and logout.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

// Client holds one session against one scanner host. It starts
// unauthenticated; Login stores the session token and every later request
// carries it. Callers must attempt Logout on every path past a successful
// Login so sessions are not leaked on the remote service.
type Client struct {
	host  string
	port  int
	http  *http.Client
	token string
}

// New builds a client for https://host:port. insecure disables certificate
// verification; the default verifies against the system CA pool.
func New(host string, port int, insecure bool, timeout time.Duration) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure},
	}
	return &Client{
		host: host,
		port: port,
		http: &http.Client{Timeout: timeout, Transport: transport},
	}
}

func (c *Client) buildURL(resource string) string {
	return fmt.Sprintf("https://%s%s", net.JoinHostPort(c.host, strconv.Itoa(c.port)), resource)
}

// Login authenticates against POST /session and stores the returned token.
// Credential rejection yields *AuthenticationError, transport failure
// *ConnectivityError; the two are distinguishable with errors.As.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("/session"), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectivityError{Host: c.host, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return &AuthenticationError{Host: c.host, Username: username}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		io.Copy(io.Discard, resp.Body)
		return &ServerError{Code: resp.StatusCode, Reason: statusReason(resp.StatusCode)}
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return fmt.Errorf("decoding login response: %w", err)
	}

	c.token = session.Token
	return nil
}

// Logout destroys the session with DELETE /session. It is best-effort:
// callers ignore its error so a failed logout never masks a command result.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" {
		return nil
	}
	err := c.do(ctx, http.MethodDelete, "/session", nil)
	c.token = ""
	return err
}

// statusReason is the operator-facing text for a fatal status. The three
// statuses the scanner uses for hard failures carry a fixed sentence; anything
// else falls back to the standard status text.
func statusReason(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return "Unauthorized."
	case http.StatusInternalServerError:
		return "Internal Server Error."
	case http.StatusServiceUnavailable:
		return "Service Unavailable."
	default:
		return http.StatusText(code)
	}
}

// do issues one authenticated request and decodes the JSON response into out
// when out is non-nil. 401, 500, and 503 map to *ServerError with the
// operator-facing reason; no status is ever retried.
func (c *Client) do(ctx context.Context, method, resource string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(resource), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cookie", "token="+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectivityError{Host: c.host, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return &ServerError{Code: resp.StatusCode, Reason: statusReason(resp.StatusCode)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, resource, err)
	}
	return nil
}
