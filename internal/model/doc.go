// Package model defines the core data structures used throughout internhunt.
//
// This package contains the following main types:
//   - Internship: A catalog listing as returned by the backend
//   - TrackerEntry: A user's saved record of interest in an internship
//   - Profile: The student profile attached to an account
//   - Recommendation: An AI-generated internship suggestion
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (api, catalog, render, tracker) need to use
// these types, so centralizing them prevents import cycles.
//
// The backend's catalog data embeds literal placeholder strings ("nan",
// "Unknown") where a field is absent. Models normalize those sentinels to the
// empty string once on ingest, so consumers only ever test for emptiness.
package model
