// Package tracker joins the user's saved tracker entries with catalog
// listings and manages the lifecycle of a tracker edit.
//
// The tracker is server-authoritative: this package never stores entries
// locally. It fetches entries and the listing catalog concurrently, joins
// them by internship id, and degrades to the local catalog cache when the
// catalog endpoint is unreachable. Entries whose listing has disappeared
// from the catalog are still shown, keyed by their internship id.
package tracker
