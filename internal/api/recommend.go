package api

import (
	"context"
	"net/http"

	"github.com/nao1215/internhunt/internal/model"
)

// recommendationsResponse is the GET /recommendations envelope.
type recommendationsResponse struct {
	envelope
	Recommendations []model.Recommendation `json:"recommendations"`
}

// Recommendations fetches AI-generated suggestions for the logged-in
// student. The backend restricts this endpoint to student accounts; admins
// receive an application error. Results are ephemeral and never persisted
// client-side.
func (c *Client) Recommendations(ctx context.Context) ([]model.Recommendation, error) {
	var resp recommendationsResponse
	if err := c.do(ctx, http.MethodGet, "/recommendations", nil, nil, &resp); err != nil {
		return nil, err
	}
	for i := range resp.Recommendations {
		resp.Recommendations[i].Normalize()
	}
	return resp.Recommendations, nil
}
