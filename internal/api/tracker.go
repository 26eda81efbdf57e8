package api

import (
	"context"
	"net/http"

	"github.com/nao1215/internhunt/internal/model"
)

// trackerResponse is the GET /tracker envelope.
type trackerResponse struct {
	envelope
	Trackers []model.TrackerEntry `json:"trackers"`
}

// addTrackerResponse is the POST /tracker envelope.
type addTrackerResponse struct {
	envelope
	ID string `json:"id"`
}

// addTrackerRequest is the POST /tracker payload. New entries always start
// as "interested", matching the web client.
type addTrackerRequest struct {
	InternshipID string `json:"internshipId"`
	Status       string `json:"status"`
}

// updateTrackerRequest is the PATCH /tracker payload. The backend takes the
// tracker id in the body, not the path.
type updateTrackerRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// ListTracker fetches the logged-in user's tracker entries.
func (c *Client) ListTracker(ctx context.Context) ([]model.TrackerEntry, error) {
	var resp trackerResponse
	if err := c.do(ctx, http.MethodGet, "/tracker", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Trackers, nil
}

// AddTracker saves an internship to the tracker with the initial
// "interested" status and returns the new entry's id. Whether repeated adds
// of the same internship dedup is server-defined; the client displays
// whatever the server returns.
func (c *Client) AddTracker(ctx context.Context, internshipID string) (string, error) {
	payload := addTrackerRequest{
		InternshipID: internshipID,
		Status:       model.StatusInterested.String(),
	}

	var resp addTrackerResponse
	if err := c.do(ctx, http.MethodPost, "/tracker", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateTracker patches an entry's status and notes. Concurrent edits to the
// same entry are last-write-wins; the client does not serialize or
// de-duplicate overlapping saves.
func (c *Client) UpdateTracker(ctx context.Context, id string, status model.Status, notes string) error {
	payload := updateTrackerRequest{
		ID:     id,
		Status: status.String(),
		Notes:  notes,
	}

	var resp envelope
	return c.do(ctx, http.MethodPatch, "/tracker", nil, payload, &resp)
}
