package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/api"
	"github.com/nao1215/internhunt/internal/session"
)

// NewPostCmd creates the post command.
func NewPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish an internship listing (admin only)",
		Long: `Post publishes a new internship listing to the catalog. The backend
accepts listings from school-admin accounts only.

Examples:
  internhunt post --name "Lab Assistant" --organization "Acme Research" \
    --category Science --location "Boston, MA" --deadline 2026-10-01 \
    --url https://acme.example.com/apply --contact jobs@acme.example.com \
    --description "Help run experiments in the wet lab."`,
		RunE: runPostCmd,
	}

	addClientFlags(cmd)
	cmd.Flags().String("name", "", "Listing name (required)")
	cmd.Flags().String("organization", "", "Hosting organization")
	cmd.Flags().String("url", "", "Application URL")
	cmd.Flags().String("contact", "", "Contact email or phone")
	cmd.Flags().String("deadline", "", "Application deadline")
	cmd.Flags().String("category", "", "Category")
	cmd.Flags().String("location", "", "Location")
	cmd.Flags().String("description", "", "Description")

	return cmd
}

// runPostCmd executes the post command.
func runPostCmd(cmd *cobra.Command, _ []string) error {
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
	// The backend enforces the role too; checking here gives a clearer
	// message than its application error.
	if sess.Role != session.RoleAdmin {
		return errors.New("posting requires a school-admin account (run \"internhunt login admin\")")
	}

	draft := api.InternshipDraft{}
	for _, field := range []struct {
		flag string
		dst  *string
	}{
		{"name", &draft.Name},
		{"organization", &draft.Organization},
		{"url", &draft.URL},
		{"contact", &draft.Contact},
		{"deadline", &draft.Deadline},
		{"category", &draft.Category},
		{"location", &draft.Location},
		{"description", &draft.Description},
	} {
		*field.dst, err = cmd.Flags().GetString(field.flag)
		if err != nil {
			return err
		}
	}
	if draft.Name == "" {
		return errors.New("--name is required")
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, sess, logger)
	created, err := client.CreateInternship(ctx, draft)
	if err != nil {
		return describeAuthError(store, err)
	}

	// Keep offline search current with the new listing.
	refreshCache(ctx, cfg, nil, client, logger)

	fmt.Fprintf(cmd.OutOrStdout(), "Published %q", created.Name)
	if created.ID != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " (id: %s)", created.ID)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
