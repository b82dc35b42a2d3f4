package api

import "fmt"

// ConnectivityError reports that the scanner host could not be reached at
// all: DNS, TCP, or TLS failure before any HTTP status was received. It is
// scoped to a single target address.
type ConnectivityError struct {
	Host string
	Err  error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot reach %s: %v", e.Host, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// AuthenticationError reports that the scanner rejected the supplied
// credentials at login.
type AuthenticationError struct {
	Host     string
	Username string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for %s @ %s", e.Username, e.Host)
}

// ServerError reports a fatal HTTP status on an authenticated call. A 401
// mid-session means the token was invalidated out from under us; 500 and 503
// are not safe to retry blindly. All three abort the whole run.
type ServerError struct {
	Code   int
	Reason string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("response code %d: %s", e.Code, e.Reason)
}
