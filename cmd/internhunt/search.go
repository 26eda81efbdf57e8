package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/internhunt/internal/api"
	"github.com/nao1215/internhunt/internal/catalog"
	"github.com/nao1215/internhunt/internal/config"
	"github.com/nao1215/internhunt/internal/model"
	"github.com/nao1215/internhunt/internal/render"
	"github.com/nao1215/internhunt/internal/session"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the internship catalog",
		Long: `Search fetches internship listings from the backend, optionally filtered
by a free-text query and a category. No account is needed to search.

Each successful search refreshes the local catalog cache, which backs
--offline mode and the tracker's listing titles when the backend is
unreachable.

Examples:
  # List every internship
  internhunt search

  # Free-text search
  internhunt search robotics lab

  # Filter by category
  internhunt search --category "Computer Science"

  # Just the result count
  internhunt search --collapsed

  # List the available categories
  internhunt search --categories

  # Search the local cache without contacting the backend
  internhunt search --offline robotics`,
		Args: cobra.ArbitraryArgs,
		RunE: runSearchCmd,
	}

	addClientFlags(cmd)
	addOutputFlags(cmd)

	cmd.Flags().StringP("category", "C", "", "Filter by category")
	cmd.Flags().Bool("categories", false, "List available categories instead of searching")
	cmd.Flags().Bool("collapsed", false, "Collapse the result list, printing only the count")
	cmd.Flags().Bool("offline", false, "Search the local catalog cache without contacting the backend")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)

	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return err
	}
	listCategories, err := cmd.Flags().GetBool("categories")
	if err != nil {
		return err
	}
	collapsed, err := cmd.Flags().GetBool("collapsed")
	if err != nil {
		return err
	}
	offline, err := cmd.Flags().GetBool("offline")
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	ctx, cancel := signalContext(logger)
	defer cancel()

	writer, closeOutput, err := newWriter(cfg, cmd.OutOrStdout(), render.WithCollapsed(collapsed))
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // double close is harmless

	var internships []model.Internship
	if offline {
		internships, err = offlineSearch(ctx, cfg, query, category)
	} else {
		client := newClient(cfg, loadOptionalSession(cfg), logger)
		internships, err = onlineSearch(ctx, cfg, client, query, category, logger)
	}
	if err != nil {
		return err
	}

	if listCategories {
		if _, err := writer.WriteCategories(model.Categories(internships)); err != nil {
			return fmt.Errorf("failed to write categories: %w", err)
		}
		return closeOutput()
	}

	if _, err := writer.WriteInternships(internships); err != nil {
		return fmt.Errorf("failed to write search results: %w", err)
	}
	return closeOutput()
}

// onlineSearch fetches listings from the backend and refreshes the local
// catalog cache with the full catalog.
func onlineSearch(ctx context.Context, cfg *config.Config, client *api.Client, query, category string, logger *slog.Logger) ([]model.Internship, error) {
	internships, err := client.ListInternships(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	// Filtered results would shadow listings already cached, so only an
	// unfiltered fetch is worth storing.
	full := internships
	if query != "" || category != "" {
		full = nil
	}
	refreshCache(ctx, cfg, full, client, logger)
	return internships, nil
}

// refreshCache updates the local catalog cache. A nil slice triggers an
// unfiltered catalog fetch first; cache failures are logged, never fatal.
func refreshCache(ctx context.Context, cfg *config.Config, full []model.Internship, client *api.Client, logger *slog.Logger) {
	if full == nil {
		fetched, err := client.ListInternships(ctx, "", "")
		if err != nil {
			logger.Warn("skipping cache refresh, full catalog fetch failed", "error", err)
			return
		}
		full = fetched
	}

	cache, err := catalog.Open(cfg.DataDir, catalog.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open catalog cache", "error", err)
		return
	}
	defer cache.Close() //nolint:errcheck // read-only close

	summary, err := cache.Replace(ctx, full)
	if err != nil {
		logger.Warn("failed to refresh catalog cache", "error", err)
		return
	}
	if summary.Added > 0 || summary.Changed > 0 {
		logger.Debug("catalog cache refreshed",
			"total", summary.Total,
			"added", summary.Added,
			"changed", summary.Changed,
		)
	}
}

// offlineSearch queries the local catalog cache.
func offlineSearch(ctx context.Context, cfg *config.Config, query, category string) ([]model.Internship, error) {
	opts := catalog.Options{CreateIfNotExists: false, EnableWAL: true}
	cache, err := catalog.Open(cfg.DataDir, opts)
	if err != nil {
		return nil, fmt.Errorf("no local catalog cache (run an online search first): %w", err)
	}
	defer cache.Close() //nolint:errcheck // read-only close

	internships, err := cache.List(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("offline search failed: %w", err)
	}
	if len(internships) == 0 {
		// An empty cache means nothing was ever fetched, which deserves a
		// different message than a query with no matches.
		if n, err := cache.Count(ctx); err == nil && n == 0 {
			return nil, errors.New("the local catalog cache is empty (run an online search first)")
		}
	}
	return internships, nil
}

// loadOptionalSession returns the stored session or the zero value when the
// user is logged out. Search works either way.
func loadOptionalSession(cfg *config.Config) session.Session {
	sess, err := openStore(cfg).Load()
	if err != nil {
		return session.Session{}
	}
	return sess
}
