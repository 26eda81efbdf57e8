package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBaseURL is the backend REST API base path. The development
	// server listens on the loopback interface; deployments override this
	// via the config file or the --base-url flag.
	DefaultBaseURL = "http://127.0.0.1:5000/api"

	// DefaultTimeout is the per-request timeout. The backend answers from a
	// local SQLite database, so 30 seconds is generous; the recommendations
	// endpoint can take longer because it calls an LLM upstream.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies internhunt in HTTP requests.
	DefaultUserAgent = "internhunt/1.0 (+https://github.com/nao1215/internhunt)"

	// AppName is the application name used for XDG directory paths.
	AppName = "internhunt"
)

// Config holds all configuration options for internhunt.
// This struct is populated from CLI flags and the optional config file, then
// passed through the application via dependency injection rather than global
// state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is small. If the configuration grows
// significantly, consider refactoring into sub-structs.
type Config struct {
	// BaseURL is the backend REST API base path, including the /api prefix.
	// All client operations are issued relative to this URL.
	BaseURL string

	// Timeout is the per-request timeout for backend calls.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .internhunt in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// JSONOutput enables JSON output instead of the human-readable format.
	// Mutually exclusive with MarkdownOutput.
	JSONOutput bool

	// MarkdownOutput enables Markdown output instead of the human-readable
	// format. Mutually exclusive with JSONOutput.
	MarkdownOutput bool

	// OutputFile is the file path output is written to.
	// When empty, output goes to stdout.
	OutputFile string

	// DataDir is the directory holding client state: the session file and
	// the catalog cache database. Defaults to the XDG data directory.
	DataDir string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on zero
// values because the defaults are non-zero (base URL, timeout). This also
// serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		DataDir:   XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for internhunt.
// On Linux: ~/.local/share/internhunt
// On macOS: ~/Library/Application Support/internhunt
// On Windows: %LOCALAPPDATA%\internhunt
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for internhunt.
// On Linux: ~/.config/internhunt
// On macOS: ~/Library/Application Support/internhunt
// On Windows: %APPDATA%\internhunt
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
// Called once after CLI parsing, before any backend calls.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrNoBaseURL
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrInvalidBaseURL
	}

	// Timeout must be positive; zero timeout would cause immediate failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	// JSONOutput and MarkdownOutput are mutually exclusive
	if c.JSONOutput && c.MarkdownOutput {
		return ErrConflictingOutputFormats
	}

	return nil
}
