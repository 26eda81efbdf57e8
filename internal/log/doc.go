// Package log provides secure logging utilities for internhunt.
//
// The client holds a bearer auth token and sends user passwords on login and
// signup. SecureHandler wraps any slog.Handler and redacts attribute values
// that look like credentials before they reach the log output, so verbose
// logging can stay safe to share.
package log
