// Package config provides configuration structures and utilities for
// internhunt. It defines the backend endpoint settings, output format
// preferences, and the XDG directory helpers used for on-disk client state
// (session file and catalog cache).
package config
