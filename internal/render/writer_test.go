package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nao1215/internhunt/internal/model"
)

// testInternships creates listings with sample data for testing.
func testInternships() []model.Internship {
	return []model.Internship{
		{
			ID:           "abc12345def",
			Name:         "Lab Assistant",
			Organization: "Acme Research",
			Category:     "Science",
			Location:     "Boston, MA",
			Deadline:     "2026-10-01",
			URL:          "https://acme.example.com/apply",
			Description:  "Help run experiments in the wet lab.",
		},
		{
			ID:          "fff00011122",
			Name:        "Junior Developer",
			Category:    "Tech",
			Description: "Write small internal tools.",
		},
	}
}

// testTrackerRows creates tracker rows with and without catalog listings.
func testTrackerRows() []model.TrackerRow {
	listing := testInternships()[0]
	return []model.TrackerRow{
		{
			Entry: model.TrackerEntry{
				ID:           "t1",
				InternshipID: listing.ID,
				Status:       model.StatusApplying,
				Notes:        "Sent resume",
			},
			Internship: &listing,
		},
		{
			Entry: model.TrackerEntry{
				ID:           "t2",
				InternshipID: "gone4567break",
				Status:       model.StatusInterested,
			},
		},
	}
}

// TestSimpleWriterInternships tests the human-readable listing output.
func TestSimpleWriterInternships(t *testing.T) {
	t.Parallel()

	t.Run("writes result count and cards", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		_, err := w.WriteInternships(testInternships())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "2 internships found") {
			t.Error("expected output to contain result count")
		}
		if !strings.Contains(output, "Lab Assistant - Acme Research") {
			t.Error("expected output to contain listing title")
		}
		if !strings.Contains(output, "Help run experiments") {
			t.Error("expected output to contain description")
		}
	})

	t.Run("omits empty fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteInternships(testInternships()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The second listing has no organization, location, or deadline.
		for _, line := range strings.Split(buf.String(), "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "Location:" || trimmed == "Deadline:" || trimmed == "Contact:" {
				t.Errorf("expected empty fields to be omitted, found %q", line)
			}
		}
	})

	t.Run("collapsed prints only the count header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithCollapsed(true))

		if _, err := w.WriteInternships(testInternships()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := strings.TrimSpace(buf.String()); got != "2 internships found" {
			t.Errorf("expected header only, got %q", got)
		}
	})

	t.Run("empty result shows placeholder", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteInternships(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "No internships found. Try a different search.") {
			t.Error("expected placeholder for empty results")
		}
	})
}

// TestSimpleWriterTracker tests tracker row output.
func TestSimpleWriterTracker(t *testing.T) {
	t.Parallel()

	t.Run("writes status labels and notes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteTracker(testTrackerRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "[Applying] Lab Assistant") {
			t.Error("expected capitalized status label with listing name")
		}
		if !strings.Contains(output, "Notes: Sent resume") {
			t.Error("expected notes line")
		}
	})

	t.Run("missing listing falls back to truncated id", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteTracker(testTrackerRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "[Interested] gone4567") {
			t.Error("expected truncated internship id fallback")
		}
	})

	t.Run("empty tracker shows placeholder", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteTracker(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Your tracker is empty") {
			t.Error("expected empty-tracker placeholder")
		}
	})
}

// TestSimpleWriterRecommendations tests recommendation output.
func TestSimpleWriterRecommendations(t *testing.T) {
	t.Parallel()

	recs := []model.Recommendation{
		{
			ProgramName: "Summer Coding Camp",
			Company:     "ByteWorks",
			Location:    "Remote",
			Description: "Six weeks of project work.",
			AIReason:    "Matches your interest in programming",
		},
	}

	var buf bytes.Buffer
	w := NewSimpleWriter(&buf)

	if _, err := w.WriteRecommendations(recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Top 1 matches for you") {
		t.Error("expected match count header")
	}
	if !strings.Contains(output, "1. Summer Coding Camp - ByteWorks") {
		t.Error("expected numbered recommendation title")
	}
	if !strings.Contains(output, "Why for you: Matches your interest in programming") {
		t.Error("expected AI reason line")
	}
}

// TestSimpleWriterProfile tests profile summary output.
func TestSimpleWriterProfile(t *testing.T) {
	t.Parallel()

	t.Run("complete profile", func(t *testing.T) {
		t.Parallel()

		profile := &model.Profile{
			FirstName:        "Ada",
			LastName:         "Lovelace",
			School:           "Analytical High",
			GPA:              "4.0",
			Extracurriculars: "Math club",
			Interests:        "Computing",
			Courses:          "Calculus",
		}

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteProfile(profile); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "(AL) Ada Lovelace") {
			t.Error("expected initials and display name")
		}
		if strings.Contains(output, "incomplete") {
			t.Error("did not expect completion warning for a filled profile")
		}
	})

	t.Run("incomplete profile warns", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.WriteProfile(&model.Profile{FirstName: "Ada"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Your profile is incomplete") {
			t.Error("expected completion warning")
		}
	})
}

// TestSimpleWriterCategories tests category filter output.
func TestSimpleWriterCategories(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewSimpleWriter(&buf)

	if _, err := w.WriteCategories([]string{"Science", "Tech"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || lines[0] != "All Categories" {
		t.Errorf("expected All Categories first, got %v", lines)
	}
}

// TestJSONWriter tests the machine-readable output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes listings as valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.WriteInternships(testInternships()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded []model.Internship
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded) != 2 {
			t.Errorf("expected 2 listings, got %d", len(decoded))
		}
	})

	t.Run("nil slice marshals as empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.WriteInternships(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("expected [], got %q", buf.String())
		}
	})
}

// TestMarkdownWriter tests the Markdown output.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes listing table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.WriteInternships(testInternships()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Internship Search Results") {
			t.Error("expected markdown header")
		}
		if !strings.Contains(output, "[Lab Assistant](https://acme.example.com/apply)") {
			t.Error("expected linked listing name in table")
		}
	})

	t.Run("tracker includes status chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.WriteTracker(testTrackerRows()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "mermaid") {
			t.Error("expected mermaid status chart")
		}
		if !strings.Contains(output, "Applying") {
			t.Error("expected status label in output")
		}
	})
}

// TestMultiWriter tests fan-out to multiple writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))

	if _, err := mw.WriteInternships(testInternships()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(text.String(), "2 internships found") {
		t.Error("expected simple output in first writer")
	}
	if !strings.Contains(js.String(), "\"Lab Assistant\"") {
		t.Error("expected JSON output in second writer")
	}
}
