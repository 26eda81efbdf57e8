package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/api"
	"github.com/nao1215/internhunt/internal/catalog"
	"github.com/nao1215/internhunt/internal/config"
	intlog "github.com/nao1215/internhunt/internal/log"
	"github.com/nao1215/internhunt/internal/render"
	"github.com/nao1215/internhunt/internal/session"
)

// addClientFlags registers the flags shared by every command that talks to
// the backend.
func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("base-url", "u", config.DefaultBaseURL,
		"Backend API base URL (including the /api prefix)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Per-request timeout for backend calls")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .internhunt in current or home directory)")
}

// addOutputFlags registers the output format flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flag values take precedence over file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load values from the config file first so explicit flags win.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL, err = cmd.Flags().GetString("base-url")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Lookup("json") != nil {
		cfg.JSONOutput, err = cmd.Flags().GetBool("json")
		if err != nil {
			return nil, err
		}
		cfg.MarkdownOutput, err = cmd.Flags().GetBool("markdown")
		if err != nil {
			return nil, err
		}
		cfg.OutputFile, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// The logger masks tokens and credentials before they reach the output.
func setupLogger(verbose bool) *slog.Logger {
	logger := intlog.NewSecureLogger(os.Stderr, verbose)
	slog.SetDefault(logger)
	return logger
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// openStore returns the session store rooted at the configured data
// directory.
func openStore(cfg *config.Config) *session.Store {
	return session.NewStore(cfg.DataDir)
}

// newClient creates an API client. sess may be the zero Session for
// unauthenticated commands.
func newClient(cfg *config.Config, sess session.Session, logger *slog.Logger) *api.Client {
	opts := []api.Option{
		api.WithTimeout(cfg.Timeout),
		api.WithUserAgent(cfg.UserAgent),
		api.WithLogger(logger),
	}
	if sess.Token != "" {
		opts = append(opts, api.WithToken(sess.Token))
	}
	return api.NewClient(cfg.BaseURL, opts...)
}

// requireSession loads the stored session, translating the logged-out state
// into a friendly error.
func requireSession(store *session.Store) (session.Session, error) {
	sess, err := store.Load()
	if errors.Is(err, session.ErrNoSession) {
		return session.Session{}, errors.New("not logged in (run \"internhunt login\" first)")
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// describeAuthError clears the stored session when err is an authentication
// failure and rewrites it into a log-in hint. Other errors pass through
// unchanged.
func describeAuthError(store *session.Store, err error) error {
	if err == nil || !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	if clearErr := store.Clear(); clearErr != nil {
		return fmt.Errorf("session expired and could not be cleared: %w", clearErr)
	}
	return errors.New("session expired: please log in again")
}

// newWriter selects the output writer based on the configured format and
// destination. With --output the same content is teed to the terminal and
// the file. The returned closer must be called after writing. simpleOpts
// only apply to the human-readable writer.
func newWriter(cfg *config.Config, stdout io.Writer, simpleOpts ...render.SimpleWriterOption) (render.Writer, func() error, error) {
	build := func(output io.Writer) render.Writer {
		switch {
		case cfg.JSONOutput:
			return render.NewJSONWriter(output, render.WithPrettyPrint())
		case cfg.MarkdownOutput:
			return render.NewMarkdownWriter(output)
		default:
			opts := append([]render.SimpleWriterOption{render.WithVerbose(cfg.Verbose)}, simpleOpts...)
			return render.NewSimpleWriter(output, opts...)
		}
	}

	if cfg.OutputFile == "" {
		return build(stdout), func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return render.NewMultiWriter(build(f), build(stdout)), f.Close, nil
}

// openCacheQuietly opens the catalog cache, returning nil on failure so
// callers can degrade gracefully.
func openCacheQuietly(cfg *config.Config, logger *slog.Logger) *catalog.DB {
	cache, err := catalog.Open(cfg.DataDir, catalog.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open catalog cache", "error", err)
		return nil
	}
	return cache
}

// readLine reads a single trimmed line from in, prompting on out first.
// Callers that prompt more than once must share one reader across the
// prompts; a fresh buffered reader per prompt would swallow the read-ahead.
func readLine(out io.Writer, in *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
