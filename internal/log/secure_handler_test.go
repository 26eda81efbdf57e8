package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandlerSanitizesSensitiveKeys tests that credential-bearing keys
// are masked regardless of value.
func TestSecureHandlerSanitizesSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{
			name:     "authorization key is sanitized",
			key:      "authorization",
			value:    "Bearer token123",
			wantMask: true,
		},
		{
			name:     "Authorization key (mixed case) is sanitized",
			key:      "Authorization",
			value:    "Bearer token123",
			wantMask: true,
		},
		{
			name:     "password key is sanitized",
			key:      "password",
			value:    "hunter2",
			wantMask: true,
		},
		{
			name:     "auth_token key is sanitized",
			key:      "auth_token",
			value:    "abc",
			wantMask: true,
		},
		{
			name:     "keyword-containing key is sanitized",
			key:      "studentAuthToken",
			value:    "abc",
			wantMask: true,
		},
		{
			name:     "ordinary key passes through",
			key:      "category",
			value:    "Tech",
			wantMask: false,
		},
		{
			name:     "keyboard does not trip the key keyword",
			key:      "keyboard",
			value:    "qwerty",
			wantMask: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tt.key, tt.value)

			output := buf.String()
			if tt.wantMask {
				if !strings.Contains(output, MaskValue) {
					t.Errorf("expected %q to be masked, got output: %s", tt.key, output)
				}
				if strings.Contains(output, tt.value) {
					t.Errorf("sensitive value %q leaked into output: %s", tt.value, output)
				}
			} else {
				if !strings.Contains(output, tt.value) {
					t.Errorf("expected value %q in output, got: %s", tt.value, output)
				}
			}
		})
	}
}

// TestSecureHandlerSanitizesSensitiveValues tests value-pattern masking for
// keys that are not themselves sensitive.
func TestSecureHandlerSanitizesSensitiveValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantMask bool
	}{
		{
			name:     "bearer prefix is masked",
			value:    "Bearer abc123",
			wantMask: true,
		},
		{
			name:     "long opaque token is masked",
			value:    "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6",
			wantMask: true,
		},
		{
			name:     "short plain value passes through",
			value:    "Boston",
			wantMask: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", "detail", tt.value)

			output := buf.String()
			if tt.wantMask && !strings.Contains(output, MaskValue) {
				t.Errorf("expected value %q to be masked, got output: %s", tt.value, output)
			}
			if !tt.wantMask && !strings.Contains(output, tt.value) {
				t.Errorf("expected value %q in output, got: %s", tt.value, output)
			}
		})
	}
}

// TestSecureHandlerSanitizesGroups verifies recursive sanitization inside
// attribute groups.
func TestSecureHandlerSanitizesGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("login", slog.Group("request",
		slog.String("username", "alice"),
		slog.String("password", "pw"),
	))

	output := buf.String()
	if !strings.Contains(output, "alice") {
		t.Errorf("expected username in output, got: %s", output)
	}
	if strings.Contains(output, "password=pw") {
		t.Errorf("password leaked into output: %s", output)
	}
}

// TestSecureHandlerWithAttrs verifies attrs added via With are sanitized.
func TestSecureHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.With("token", "abc123").Info("test")

	if strings.Contains(buf.String(), "abc123") {
		t.Errorf("token leaked into output: %s", buf.String())
	}
}

// TestNewSecureLogger verifies level selection.
func TestNewSecureLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)
		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Errorf("expected debug message in verbose output, got: %s", buf.String())
		}
	})

	t.Run("non-verbose suppresses info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Info("info message")

		if buf.Len() != 0 {
			t.Errorf("expected no output at info level, got: %s", buf.String())
		}
	})
}

// TestNewSecureJSONLogger verifies JSON output with sanitization.
func TestNewSecureJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewSecureJSONLogger(&buf, true)
	logger.Warn("test", "password", "pw")

	output := buf.String()
	if !strings.Contains(output, MaskValue) {
		t.Errorf("expected masked password in JSON output, got: %s", output)
	}
}
