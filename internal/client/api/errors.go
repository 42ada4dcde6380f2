package api

import (
	"fmt"
	"strings"
)

// NetworkError is a transport failure: the request never produced an HTTP
// response (connection refused, DNS failure, timeout, ...).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx HTTP response. Detail carries the server's
// "detail" message when the body had one.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error: HTTP %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error: HTTP %d", e.Status)
}

// AuthError is a login or signup rejected by the server (bad credentials,
// duplicate username, ...). Kept distinct from ServerError so callers can
// tell "you got it wrong" apart from "the server is broken".
type AuthError struct {
	Status int
	Detail string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("authentication rejected (HTTP %d)", e.Status)
}

// ValidationError reports required fields missing from user input. It is
// raised locally, before any network call is made.
type ValidationError struct {
	Missing []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	return e.Reason
}
