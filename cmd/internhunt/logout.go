package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command.
func NewLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the stored session",
		Long: `Logout deletes the locally stored session token. The backend keeps no
server-side session state, so removing the token is all it takes.
Logging out when already logged out is not an error.`,
		RunE: runLogoutCmd,
	}

	addClientFlags(cmd)

	return cmd
}

// runLogoutCmd executes the logout command.
func runLogoutCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg.Verbose)

	store := openStore(cfg)
	loggedIn := store.Exists()
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if loggedIn {
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
	}
	return nil
}
