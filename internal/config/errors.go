package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrNoBaseURL is returned when the backend base URL is empty.
	ErrNoBaseURL = errors.New("no base URL configured: set base_url in the config file or use --base-url")

	// ErrInvalidBaseURL is returned when the base URL cannot be parsed or
	// lacks a scheme or host.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http(s) URL")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingOutputFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingOutputFormats = errors.New("conflicting output formats: --json and --markdown cannot be used together")
)
