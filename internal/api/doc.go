// Package api implements the REST client for the internship backend.
//
// All operations are issued against a fixed base URL (default
// http://127.0.0.1:5000/api) with JSON bodies throughout. When a session
// exists its bearer token is attached as the Authorization header.
//
// Every call surfaces one of three outcomes, matching how the UI must react:
//   - success with a decoded payload
//   - an application-level failure (*APIError): the backend answered
//     success:false with a message to display verbatim
//   - a transport or authentication failure: ErrUnauthorized for HTTP 401
//     (callers clear the session), or a wrapped network/decode error shown
//     as a generic network problem
//
// No call is retried automatically; every failure requires a new user action.
package api
