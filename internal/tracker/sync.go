package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/internhunt/internal/catalog"
	"github.com/nao1215/internhunt/internal/model"
)

// ErrNotLoggedIn is returned when a tracker operation is attempted without a
// session token.
var ErrNotLoggedIn = errors.New("not logged in")

// Client is the API surface the syncer needs. *api.Client satisfies it.
type Client interface {
	// Token returns the bearer token, empty when logged out.
	Token() string

	// ListTracker fetches the logged-in user's tracker entries.
	ListTracker(ctx context.Context) ([]model.TrackerEntry, error)

	// ListInternships fetches the listing catalog.
	ListInternships(ctx context.Context, query, category string) ([]model.Internship, error)

	// UpdateTracker patches an entry's status and notes.
	UpdateTracker(ctx context.Context, id string, status model.Status, notes string) error
}

// Syncer fetches tracker entries and the listing catalog, joining them into
// display rows.
//
// Design decision: The tracker endpoint returns only entry data (internship
// id, status, notes), so showing a title requires the catalog. We fetch both
// concurrently rather than sequentially since neither depends on the other.
type Syncer struct {
	client Client
	cache  *catalog.DB
	logger *slog.Logger

	// mu guards indicators, one save lifecycle per tracker entry.
	mu         sync.Mutex
	indicators map[string]*SaveIndicator
}

// NewSyncer creates a Syncer. cache may be nil when the local catalog cache
// is disabled; the syncer then degrades to id-only rows if the catalog
// endpoint fails.
func NewSyncer(client Client, cache *catalog.DB, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		client:     client,
		cache:      cache,
		logger:     logger,
		indicators: make(map[string]*SaveIndicator),
	}
}

// Refresh fetches the current tracker entries and catalog, returning joined
// rows in the order the server returned the entries.
//
// A tracker fetch failure aborts the refresh: without entries there is
// nothing to show, and an expired session must surface as ErrUnauthorized to
// the caller. A catalog fetch failure is softened: the syncer falls back to
// the local cache, or to id-only rows when no cache is available.
func (s *Syncer) Refresh(ctx context.Context) ([]model.TrackerRow, error) {
	if s.client.Token() == "" {
		return nil, ErrNotLoggedIn
	}

	var (
		entries  []model.TrackerEntry
		listings []model.Internship
		fresh    bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.client.ListTracker(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch tracker entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		fetched, err := s.client.ListInternships(gctx, "", "")
		if err != nil {
			s.logger.Warn("catalog fetch failed, falling back to local cache", "error", err)
			listings = s.cachedListings(gctx)
			return nil
		}
		listings = fetched
		fresh = true
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if fresh && s.cache != nil {
		if summary, err := s.cache.Replace(ctx, listings); err != nil {
			s.logger.Warn("failed to refresh catalog cache", "error", err)
		} else if summary.Added > 0 || summary.Changed > 0 {
			s.logger.Debug("catalog cache refreshed",
				"total", summary.Total,
				"added", summary.Added,
				"changed", summary.Changed,
			)
		}
	}

	return join(entries, listings), nil
}

// Save patches a tracker entry's status and notes through its SaveIndicator.
// Overlapping saves of the same entry from this process return
// ErrSaveInProgress; concurrent edits across processes are last-write-wins on
// the server. The resulting SaveState is returned alongside the error.
func (s *Syncer) Save(ctx context.Context, id string, status model.Status, notes string) (SaveState, error) {
	if s.client.Token() == "" {
		return SaveIdle, ErrNotLoggedIn
	}

	indicator := s.indicator(id)
	if err := indicator.Begin(); err != nil {
		return indicator.State(), err
	}

	err := s.client.UpdateTracker(ctx, id, status, notes)
	return indicator.Finish(err), err
}

// indicator returns the save indicator for the given entry, creating it on
// first use.
func (s *Syncer) indicator(id string) *SaveIndicator {
	s.mu.Lock()
	defer s.mu.Unlock()

	indicator, ok := s.indicators[id]
	if !ok {
		indicator = NewSaveIndicator()
		s.indicators[id] = indicator
	}
	return indicator
}

// cachedListings reads the local catalog cache, returning nil when the cache
// is disabled or unreadable.
func (s *Syncer) cachedListings(ctx context.Context) []model.Internship {
	if s.cache == nil {
		return nil
	}
	listings, err := s.cache.List(ctx, "", "")
	if err != nil {
		s.logger.Warn("failed to read catalog cache", "error", err)
		return nil
	}
	return listings
}

// join pairs each tracker entry with its catalog listing by internship id.
// Entries without a matching listing get a nil Internship.
func join(entries []model.TrackerEntry, listings []model.Internship) []model.TrackerRow {
	byID := make(map[string]*model.Internship, len(listings))
	for i := range listings {
		byID[listings[i].ID] = &listings[i]
	}

	rows := make([]model.TrackerRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, model.TrackerRow{
			Entry:      entry,
			Internship: byID[entry.InternshipID],
		})
	}
	return rows
}
