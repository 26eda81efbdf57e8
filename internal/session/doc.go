// Package session persists the authenticated session (bearer token and
// account role) between command invocations.
//
// The session lives in a single YAML file under the internhunt data
// directory, mirroring how the web client kept the token in browser
// localStorage: it survives restarts, is scoped to the local user, and is
// the single source of truth for "is a user logged in and as what role".
// No expiry is tracked client-side; validity is decided lazily by the
// backend rejecting a request.
package session
