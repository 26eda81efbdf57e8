package api

import "errors"

// ErrUnauthorized is returned for any HTTP 401 response.
// Every caller interprets it identically: clear the stored session and fall
// back to logged-out behavior. This is the one piece of cross-cutting
// control flow in the client.
var ErrUnauthorized = errors.New("unauthorized: session is missing or expired")

// APIError is an application-level failure: the backend answered with
// success:false and a human-readable message. The message is shown to the
// user verbatim near the triggering command; no client state changes.
type APIError struct {
	// Message is the display text, taken from the response's "details"
	// field, falling back to "error".
	Message string

	// Status is the HTTP status code of the response.
	Status int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}
