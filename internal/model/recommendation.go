package model

// descriptionPreviewRunes is the truncation length for recommendation
// descriptions in card output.
const descriptionPreviewRunes = 150

// Recommendation is an AI-generated internship suggestion. Recommendations
// are ephemeral: fetched on demand and never persisted client-side.
type Recommendation struct {
	ID          string `json:"id"`
	ProgramName string `json:"program_name"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description"`
	AIReason    string `json:"ai_reason"`
}

// Normalize maps sentinel placeholder values to the empty string, matching
// Internship.Normalize.
func (r *Recommendation) Normalize() {
	r.ProgramName = CleanField(r.ProgramName)
	r.Company = CleanField(r.Company)
	r.Location = CleanField(r.Location)
	r.URL = CleanField(r.URL)
	r.Description = StripHTML(CleanField(r.Description))
	r.AIReason = CleanField(r.AIReason)
}

// DescriptionPreview returns the description truncated to 150 runes with an
// ellipsis appended when truncation occurred.
func (r *Recommendation) DescriptionPreview() string {
	runes := []rune(r.Description)
	if len(runes) <= descriptionPreviewRunes {
		return r.Description
	}
	return string(runes[:descriptionPreviewRunes]) + "..."
}
