package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nao1215/internhunt/internal/model"
)

// internshipsResponse is the GET /internships envelope.
type internshipsResponse struct {
	envelope
	Internships []model.Internship `json:"internships"`
}

// createInternshipResponse is the POST /internships envelope.
type createInternshipResponse struct {
	envelope
	Internship model.Internship `json:"internship"`
}

// InternshipDraft is the payload for creating a listing. Field names follow
// the backend's expectations, including the capital-U "Url" key.
type InternshipDraft struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	URL          string `json:"Url"`
	Contact      string `json:"contact"`
	Deadline     string `json:"deadline"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Description  string `json:"description"`
}

// ListInternships fetches the catalog, optionally filtered by a free-text
// query or a category. Both filters empty returns the full catalog. The
// endpoint requires no authentication; browsing works logged out.
// Listings are normalized before being returned.
func (c *Client) ListInternships(ctx context.Context, query, category string) ([]model.Internship, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if category != "" {
		params.Set("category", category)
	}

	var resp internshipsResponse
	if err := c.do(ctx, http.MethodGet, "/internships", params, nil, &resp); err != nil {
		return nil, err
	}
	return model.NormalizeAll(resp.Internships), nil
}

// CreateInternship posts a new listing. Requires an admin session; the
// backend answers 401 for student or missing tokens.
func (c *Client) CreateInternship(ctx context.Context, draft InternshipDraft) (model.Internship, error) {
	var resp createInternshipResponse
	if err := c.do(ctx, http.MethodPost, "/internships", nil, draft, &resp); err != nil {
		return model.Internship{}, err
	}
	resp.Internship.Normalize()
	return resp.Internship, nil
}
