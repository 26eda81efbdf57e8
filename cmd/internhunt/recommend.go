package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/model"
	"github.com/nao1215/internhunt/internal/render"
)

// NewRecommendCmd creates the recommend command.
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Fetch AI-generated internship recommendations",
		Long: `Recommend asks the backend for internship suggestions matched to your
profile. Recommendations are generated per request and never stored;
this endpoint is available to student accounts only.

The call can take noticeably longer than other commands because the
backend consults a language model.

Examples:
  # Show recommendations
  internhunt recommend

  # Save the second recommendation to your tracker
  internhunt recommend --track 2`,
		RunE: runRecommendCmd,
	}

	addClientFlags(cmd)
	addOutputFlags(cmd)

	cmd.Flags().Bool("collapsed", false, "Collapse the list, printing only the match count")
	cmd.Flags().Int("track", 0, "Save the Nth recommendation to the tracker (1-based)")

	return cmd
}

// runRecommendCmd executes the recommend command.
func runRecommendCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	collapsed, err := cmd.Flags().GetBool("collapsed")
	if err != nil {
		return err
	}
	trackN, err := cmd.Flags().GetInt("track")
	if err != nil {
		return err
	}

	store := openStore(cfg)
	sess, err := requireSession(store)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	client := newClient(cfg, sess, logger)
	recs, err := client.Recommendations(ctx)
	if err != nil {
		return describeAuthError(store, err)
	}

	if trackN > 0 {
		return trackRecommendation(cmd, recs, trackN, func(id string) (string, error) {
			return client.AddTracker(ctx, id)
		})
	}

	writer, closeOutput, err := newWriter(cfg, cmd.OutOrStdout(), render.WithCollapsed(collapsed))
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // double close is harmless

	if _, err := writer.WriteRecommendations(recs); err != nil {
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	return closeOutput()
}

// trackRecommendation saves the nth recommendation to the tracker.
func trackRecommendation(cmd *cobra.Command, recs []model.Recommendation, n int, add func(string) (string, error)) error {
	if n > len(recs) {
		return fmt.Errorf("only %d recommendations available, cannot track #%d", len(recs), n)
	}
	rec := recs[n-1]
	if rec.ID == "" {
		return fmt.Errorf("recommendation %q is an external program and cannot be tracked", rec.ProgramName)
	}

	id, err := add(rec.ID)
	if err != nil {
		return fmt.Errorf("failed to track recommendation: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %q to tracker as %s (status: %s)\n",
		rec.ProgramName, model.TruncatedID(id), model.StatusInterested.Label())
	return nil
}
