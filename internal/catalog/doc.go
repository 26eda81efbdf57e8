// Package catalog provides a local SQLite snapshot of the internship
// catalog.
//
// The cache mirrors the last successful full fetch from the backend. It
// serves three purposes: offline search, a join fallback for tracker
// entries when the live catalog fetch fails, and change detection between
// snapshots (each row stores a content hash so a refresh can report how
// many listings are new or modified).
//
// Staleness is accepted: the cache is refreshed opportunistically after
// successful online fetches, not kept continuously in sync.
package catalog
