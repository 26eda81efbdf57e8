package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidStatus is returned when a status string is not one of the five
// tracker statuses.
var ErrInvalidStatus = errors.New("invalid tracker status")

// Status is the application stage recorded on a tracker entry.
// The backend stores statuses as lowercase strings; Status round-trips that
// representation unchanged.
type Status string

const (
	// StatusInterested is the initial status assigned when a listing is
	// added to the tracker.
	StatusInterested Status = "interested"
	// StatusApplying indicates an application is being prepared or submitted.
	StatusApplying Status = "applying"
	// StatusInterviewing indicates the user is in the interview process.
	StatusInterviewing Status = "interviewing"
	// StatusAccepted indicates an offer was received.
	StatusAccepted Status = "accepted"
	// StatusRejected indicates the application was declined.
	StatusRejected Status = "rejected"
)

// Statuses lists all valid statuses in display order.
func Statuses() []Status {
	return []Status{
		StatusInterested,
		StatusApplying,
		StatusInterviewing,
		StatusAccepted,
		StatusRejected,
	}
}

// ParseStatus converts a string into a Status.
// Matching is case-insensitive; whitespace is trimmed.
func ParseStatus(s string) (Status, error) {
	candidate := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Statuses() {
		if candidate == valid {
			return valid, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: interested, applying, interviewing, accepted, rejected)", ErrInvalidStatus, s)
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// Label returns the capitalized display form of the status, e.g.
// "Interviewing".
func (s Status) Label() string {
	return cases.Title(language.English).String(string(s))
}

// TrackerEntry is a user's saved record of interest in a specific internship.
// Entries are created via "add to tracker" and mutated via status/notes
// edits. The client never deletes entries.
type TrackerEntry struct {
	ID           string `json:"id"`
	InternshipID string `json:"internshipId"`
	Status       Status `json:"status"`
	Notes        string `json:"notes"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// TrackerRow pairs a tracker entry with the catalog listing it points at.
// Internship is nil when the listing is no longer in the catalog; display
// code falls back to the truncated internship id in that case.
type TrackerRow struct {
	Entry      TrackerEntry `json:"entry"`
	Internship *Internship  `json:"internship,omitempty"`
}

// Title returns the display name for the row: the listing name when the
// catalog still has it, otherwise the truncated internship id.
func (r *TrackerRow) Title() string {
	if r.Internship != nil && r.Internship.Name != "" {
		return r.Internship.Name
	}
	return TruncatedID(r.Entry.InternshipID)
}
