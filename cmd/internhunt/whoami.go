package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command.
func NewWhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and verify it against the backend",
		Long: `Whoami reports whether a session is stored and checks it against the
backend with a lightweight authenticated request. A session the backend
rejects is cleared immediately: an expired or tampered token is useless
and keeping it would make every later command fail the same way.`,
		RunE: runWhoamiCmd,
	}

	addClientFlags(cmd)

	return cmd
}

// runWhoamiCmd executes the whoami command.
func runWhoamiCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	store := openStore(cfg)
	sess, err := requireSession(store)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, sess, logger)
	if err := client.VerifySession(ctx); err != nil {
		// Any verification failure invalidates the stored session: the
		// token may be expired, revoked, or the backend unreachable. Err
		// on the side of logging out.
		if clearErr := store.Clear(); clearErr != nil {
			logger.Warn("failed to clear rejected session", "error", clearErr)
		}
		return fmt.Errorf("session is no longer valid, logged out: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in (%s account).\n", sess.Role)
	fmt.Fprintf(cmd.OutOrStdout(), "Session file: %s\n", store.Path())
	return nil
}
