package api

import (
	"context"
	"net/http"

	"github.com/nao1215/internhunt/internal/model"
)

// profileResponse is the GET /profile envelope.
type profileResponse struct {
	envelope
	User model.Profile `json:"user"`
}

// Profile fetches the logged-in student's profile.
func (c *Client) Profile(ctx context.Context) (model.Profile, error) {
	var resp profileResponse
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &resp); err != nil {
		return model.Profile{}, err
	}
	return resp.User, nil
}

// UpdateProfile patches the logged-in student's profile. The backend
// replaces the provided fields; callers merge edits over a freshly fetched
// profile so unset fields are preserved.
func (c *Client) UpdateProfile(ctx context.Context, profile model.Profile) error {
	var resp envelope
	return c.do(ctx, http.MethodPatch, "/profile", nil, profile, &resp)
}
