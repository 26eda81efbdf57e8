package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/api"
	"github.com/nao1215/internhunt/internal/catalog"
	"github.com/nao1215/internhunt/internal/model"
	"github.com/nao1215/internhunt/internal/session"
	"github.com/nao1215/internhunt/internal/tracker"
)

// NewTrackerCmd creates the tracker command.
func NewTrackerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Manage your internship application tracker",
		Long: `Tracker lists your saved internships with their application status and
notes. The tracker lives on the backend; listing titles are joined in
from the catalog, falling back to the local cache when the catalog
endpoint is unreachable.

Examples:
  # List tracked internships
  internhunt tracker

  # Save an internship (find ids with "internhunt search -v")
  internhunt tracker add 3f8a2c91

  # Move an application forward
  internhunt tracker update <entry-id> --status interviewing

  # Update notes only
  internhunt tracker update <entry-id> --notes "Phone screen on Friday"`,
		RunE: runTrackerListCmd,
	}

	addClientFlags(cmd)
	addOutputFlags(cmd)

	cmd.AddCommand(newTrackerAddCmd())
	cmd.AddCommand(newTrackerUpdateCmd())

	return cmd
}

// newTrackerAddCmd creates the tracker add subcommand.
func newTrackerAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <internship-id>",
		Short: "Save an internship to the tracker",
		Long: `Add saves an internship to your tracker with the initial "interested"
status. Use "internhunt tracker update" to change the status and attach
notes as your application progresses.`,
		Args: cobra.ExactArgs(1),
		RunE: runTrackerAddCmd,
	}

	addClientFlags(cmd)

	return cmd
}

// newTrackerUpdateCmd creates the tracker update subcommand.
func newTrackerUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <entry-id>",
		Short: "Update a tracker entry's status or notes",
		Long: `Update changes a tracker entry. Fields without a flag keep their current
value. Concurrent edits to the same entry are last-write-wins on the
backend.

Valid statuses: interested, applying, interviewing, accepted, rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: runTrackerUpdateCmd,
	}

	addClientFlags(cmd)
	cmd.Flags().StringP("status", "s", "", "New application status")
	cmd.Flags().StringP("notes", "n", "", "Notes on the application")

	return cmd
}

// runTrackerListCmd executes the tracker list command.
func runTrackerListCmd(cmd *cobra.Command, _ []string) error {
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
	cache := openCacheQuietly(cfg, logger)
	if cache != nil {
		defer cache.Close() //nolint:errcheck // read-only close
	}

	rows, err := tracker.NewSyncer(client, cache, logger).Refresh(ctx)
	if err != nil {
		return describeAuthError(store, err)
	}

	writer, closeOutput, err := newWriter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // double close is harmless

	if _, err := writer.WriteTracker(rows); err != nil {
		return fmt.Errorf("failed to write tracker: %w", err)
	}
	return closeOutput()
}

// runTrackerAddCmd executes the tracker add command.
func runTrackerAddCmd(cmd *cobra.Command, args []string) error {
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

	cache := openCacheQuietly(cfg, logger)
	if cache != nil {
		defer cache.Close() //nolint:errcheck // read-only close
	}
	internshipID, listing := resolveInternship(ctx, cache, args[0])

	client := newClient(cfg, sess, logger)
	id, err := client.AddTracker(ctx, internshipID)
	if err != nil {
		return describeAuthError(store, err)
	}

	if listing != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q to tracker as %s (status: %s)\n",
			listing.Name, model.TruncatedID(id), model.StatusInterested.Label())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved to tracker as %s (status: %s)\n",
			model.TruncatedID(id), model.StatusInterested.Label())
	}
	return nil
}

// resolveInternship looks the id up in the local catalog cache, accepting
// the truncated display form shown by search and tracker output. Returns
// the full id and the cached listing when found; unknown ids pass through
// unchanged so the backend stays the authority.
func resolveInternship(ctx context.Context, cache *catalog.DB, id string) (string, *model.Internship) {
	if cache == nil {
		return id, nil
	}

	if listing, err := cache.Get(ctx, id); err == nil {
		return listing.ID, &listing
	}

	listings, err := cache.List(ctx, "", "")
	if err != nil {
		return id, nil
	}
	for i := range listings {
		if model.TruncatedID(listings[i].ID) == id {
			return listings[i].ID, &listings[i]
		}
	}
	return id, nil
}

// runTrackerUpdateCmd executes the tracker update command.
func runTrackerUpdateCmd(cmd *cobra.Command, args []string) error {
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

	statusFlag, err := cmd.Flags().GetString("status")
	if err != nil {
		return err
	}
	notesFlag, err := cmd.Flags().GetString("notes")
	if err != nil {
		return err
	}
	if statusFlag == "" && !cmd.Flags().Changed("notes") {
		return errors.New("nothing to update (pass --status and/or --notes)")
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, sess, logger)

	// The PATCH endpoint replaces both fields, so fetch the current entry
	// to preserve whichever field was not given.
	entry, err := findTrackerEntry(ctx, client, store, args[0])
	if err != nil {
		return err
	}

	status := entry.Status
	if statusFlag != "" {
		status, err = model.ParseStatus(statusFlag)
		if err != nil {
			return err
		}
	}
	notes := entry.Notes
	if cmd.Flags().Changed("notes") {
		notes = notesFlag
	}

	state, err := tracker.NewSyncer(client, nil, logger).Save(ctx, entry.ID, status, notes)
	if state != tracker.SaveSaved {
		return describeAuthError(store, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (status: %s)\n", state, status.Label())
	return nil
}

// findTrackerEntry fetches the tracker and locates the entry with the given
// id, matching either the full id or its truncated display form.
func findTrackerEntry(ctx context.Context, client *api.Client, store *session.Store, id string) (model.TrackerEntry, error) {
	entries, err := client.ListTracker(ctx)
	if err != nil {
		return model.TrackerEntry{}, describeAuthError(store, err)
	}

	for _, entry := range entries {
		if entry.ID == id || model.TruncatedID(entry.ID) == id {
			return entry, nil
		}
	}
	return model.TrackerEntry{}, fmt.Errorf("no tracker entry with id %q (run \"internhunt tracker\" to list entries)", id)
}
