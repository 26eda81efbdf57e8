package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/api"
	"github.com/nao1215/internhunt/internal/config"
	"github.com/nao1215/internhunt/internal/render"
	"github.com/nao1215/internhunt/internal/session"
	"github.com/nao1215/internhunt/internal/tracker"
)

// NewLoginCmd creates the login command.
func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [username]",
		Short: "Log in to a student account",
		Long: `Login authenticates against the backend and stores the issued session
token in the local data directory. The token is sent as a Bearer
credential on subsequent commands until "internhunt logout".

Examples:
  # Log in, prompting for username and password
  internhunt login

  # Log in as a specific user
  internhunt login ada

  # Log in to a school-admin account
  internhunt login admin principal_skinner`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCmd(cmd, args, session.RoleStudent)
		},
	}

	addClientFlags(cmd)
	cmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")

	admin := &cobra.Command{
		Use:   "admin [username]",
		Short: "Log in to a school-admin account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCmd(cmd, args, session.RoleAdmin)
		},
	}
	addClientFlags(admin)
	admin.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	cmd.AddCommand(admin)

	return cmd
}

// runLoginCmd executes the login command for the given role.
func runLoginCmd(cmd *cobra.Command, args []string, role session.Role) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	// One reader for both prompts; see readLine.
	in := bufio.NewReader(cmd.InOrStdin())

	username := ""
	if len(args) > 0 {
		username = args[0]
	}
	if username == "" {
		username, err = readLine(cmd.OutOrStdout(), in, "Username: ")
		if err != nil {
			return err
		}
	}
	if username == "" {
		return errors.New("username cannot be empty")
	}

	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return err
	}
	if password == "" {
		password, err = readLine(cmd.OutOrStdout(), in, "Password: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, session.Session{}, logger)

	var token string
	if role == session.RoleAdmin {
		token, err = client.AdminLogin(ctx, username, password)
	} else {
		token, err = client.Login(ctx, username, password)
	}
	if err != nil {
		// Bad credentials come back as 401; the wrapped error carries the
		// server's message ("Invalid credentials").
		return fmt.Errorf("login failed: %w", err)
	}

	store := openStore(cfg)
	sess := session.Session{Token: token, Role: role}
	if err := store.Save(sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", username, role)

	if role == session.RoleStudent {
		printLoginSummary(ctx, cmd, cfg, newClient(cfg, sess, logger), logger)
	}
	return nil
}

// printLoginSummary shows the post-login dashboard. The tracker loads
// before the profile, matching the in-app login sequence. Failures here
// never fail the login; the session is already saved.
func printLoginSummary(ctx context.Context, cmd *cobra.Command, cfg *config.Config, client *api.Client, logger *slog.Logger) {
	out := cmd.OutOrStdout()

	cache := openCacheQuietly(cfg, logger)
	if cache != nil {
		defer cache.Close() //nolint:errcheck // read-only close
	}
	rows, trackerErr := tracker.NewSyncer(client, cache, logger).Refresh(ctx)
	if trackerErr != nil {
		logger.Warn("failed to load tracker after login", "error", trackerErr)
	}

	profile, err := client.Profile(ctx)
	if err != nil {
		logger.Warn("failed to load profile after login", "error", err)
	} else {
		fmt.Fprintln(out)
		w := render.NewSimpleWriter(out)
		if _, err := w.WriteProfile(&profile); err != nil {
			logger.Warn("failed to render profile", "error", err)
		}
	}

	if trackerErr == nil {
		fmt.Fprintf(out, "\nYou are tracking %d internships. Run \"internhunt tracker\" to see them.\n", len(rows))
	}
}
