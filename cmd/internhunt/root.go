// Package main provides the entry point for the internhunt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for internhunt.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "internhunt",
		Short: "Discover and track high-school internships",
		Long: `internhunt is a command-line client for the internship discovery platform.

Browse the internship catalog without an account, or log in to save
internships to your application tracker, edit your student profile, and
fetch AI-generated recommendations. School administrators can post new
internship listings.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewLoginCmd())
	cmd.AddCommand(NewSignupCmd())
	cmd.AddCommand(NewLogoutCmd())
	cmd.AddCommand(NewWhoamiCmd())
	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewTrackerCmd())
	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewPostCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
