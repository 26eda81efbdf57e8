package model

import (
	"errors"
	"reflect"
	"testing"
)

// TestInternshipNormalize verifies that sentinel placeholder values are
// converted to the empty string and real values pass through unchanged.
func TestInternshipNormalize(t *testing.T) {
	t.Parallel()

	t.Run("sentinel fields become empty", func(t *testing.T) {
		t.Parallel()

		i := Internship{
			ID:           "abc123",
			Name:         "Research Internship",
			Organization: "nan",
			Location:     "Unknown",
			Category:     "N/A",
			Deadline:     "nan",
			Contact:      "contact@example.com",
			URL:          "  ",
		}
		i.Normalize()

		if i.Organization != "" {
			t.Errorf("expected organization to be empty, got %q", i.Organization)
		}
		if i.Location != "" {
			t.Errorf("expected location to be empty, got %q", i.Location)
		}
		if i.Category != "" {
			t.Errorf("expected category to be empty, got %q", i.Category)
		}
		if i.Deadline != "" {
			t.Errorf("expected deadline to be empty, got %q", i.Deadline)
		}
		if i.Contact != "" {
			t.Errorf("expected placeholder contact to be empty, got %q", i.Contact)
		}
		if i.URL != "" {
			t.Errorf("expected blank URL to be empty, got %q", i.URL)
		}
	})

	t.Run("real values survive normalization", func(t *testing.T) {
		t.Parallel()

		i := Internship{
			Name:         "Summer Lab Assistant",
			Organization: "Acme Research",
			Location:     "Boston, MA",
			Category:     "Science",
			Contact:      "outreach@acme.example",
		}
		i.Normalize()

		if i.Organization != "Acme Research" {
			t.Errorf("expected organization unchanged, got %q", i.Organization)
		}
		if i.Contact != "outreach@acme.example" {
			t.Errorf("expected contact unchanged, got %q", i.Contact)
		}
	})

	t.Run("sentinel matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		if got := CleanField("NaN"); got != "" {
			t.Errorf("expected NaN to normalize to empty, got %q", got)
		}
		if got := CleanField("UNKNOWN"); got != "" {
			t.Errorf("expected UNKNOWN to normalize to empty, got %q", got)
		}
	})
}

// TestStripHTML verifies markup removal from scraped descriptions.
func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "Work with our robotics team.",
			want:  "Work with our robotics team.",
		},
		{
			name:  "tags are removed",
			input: "<p>Work with <b>our</b> robotics team.</p>",
			want:  "Work with our robotics team.",
		},
		{
			name:  "entities are decoded",
			input: "Research &amp; development",
			want:  "Research & development",
		},
		{
			name:  "script content is dropped",
			input: "<script>alert(1)</script>Apply today",
			want:  "Apply today",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestCategories verifies deduplication, blank exclusion, and first-appearance
// ordering of the category filter values.
func TestCategories(t *testing.T) {
	t.Parallel()

	t.Run("deduplicated in first-appearance order", func(t *testing.T) {
		t.Parallel()

		internships := []Internship{
			{Category: "Tech"},
			{Category: "Tech"},
			{Category: "Finance"},
			{Category: ""},
		}

		got := Categories(internships)
		want := []string{"Tech", "Finance"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Categories() = %v, want %v", got, want)
		}
	})

	t.Run("sentinel categories are excluded", func(t *testing.T) {
		t.Parallel()

		internships := []Internship{
			{Category: "nan"},
			{Category: "Arts"},
		}

		got := Categories(internships)
		want := []string{"Arts"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Categories() = %v, want %v", got, want)
		}
	})

	t.Run("empty catalog yields no categories", func(t *testing.T) {
		t.Parallel()

		if got := Categories(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

// TestTruncatedID verifies the display fallback for dangling tracker entries.
func TestTruncatedID(t *testing.T) {
	t.Parallel()

	t.Run("long id is truncated to 8 characters", func(t *testing.T) {
		t.Parallel()
		if got := TruncatedID("0123456789abcdef"); got != "01234567" {
			t.Errorf("TruncatedID() = %q, want %q", got, "01234567")
		}
	})

	t.Run("short id passes through", func(t *testing.T) {
		t.Parallel()
		if got := TruncatedID("abc"); got != "abc" {
			t.Errorf("TruncatedID() = %q, want %q", got, "abc")
		}
	})
}

// TestParseStatusAndLabel verifies status parsing and the invalid-status error.
func TestParseStatusAndLabel(t *testing.T) {
	t.Parallel()

	t.Run("valid statuses parse case-insensitively", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"interested", "Applying", "INTERVIEWING", " accepted ", "rejected"} {
			if _, err := ParseStatus(input); err != nil {
				t.Errorf("ParseStatus(%q) returned error: %v", input, err)
			}
		}
	})

	t.Run("invalid status returns ErrInvalidStatus", func(t *testing.T) {
		t.Parallel()

		_, err := ParseStatus("ghosted")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("label is title-cased", func(t *testing.T) {
		t.Parallel()

		if got := StatusInterviewing.Label(); got != "Interviewing" {
			t.Errorf("Label() = %q, want %q", got, "Interviewing")
		}
	})
}
