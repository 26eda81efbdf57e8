package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/internhunt/internal/model"
)

// SimpleWriter outputs human-readable text for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// collapsed hides the card list, printing only the count header. This
	// mirrors the collapse toggle: visibility state, not a different fetch.
	collapsed bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithCollapsed hides the rendered cards, leaving only the count header.
func WithCollapsed(collapsed bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.collapsed = collapsed
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		collapsed:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteInternships outputs the listings as terminal cards. Fields that are
// empty after normalization are omitted entirely rather than shown as
// placeholders.
func (w *SimpleWriter) WriteInternships(internships []model.Internship) (int, error) {
	var sb strings.Builder

	if len(internships) == 0 {
		sb.WriteString("No internships found. Try a different search.\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString(fmt.Sprintf("%d internships found\n", len(internships)))
	if w.collapsed {
		return w.output.Write([]byte(sb.String()))
	}
	sb.WriteString("\n")

	for i, intern := range internships {
		w.writeCard(&sb, &intern)
		if i < len(internships)-1 {
			sb.WriteString("\n")
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// writeCard writes a single listing card.
func (w *SimpleWriter) writeCard(sb *strings.Builder, intern *model.Internship) {
	sb.WriteString(intern.Name)
	if intern.Organization != "" {
		sb.WriteString(" - " + intern.Organization)
	}
	sb.WriteString("\n")

	writeField(sb, "Category", intern.Category)
	writeField(sb, "Location", intern.Location)
	writeField(sb, "Deadline", intern.Deadline)
	writeField(sb, "Contact", intern.Contact)
	writeField(sb, "URL", intern.URL)
	if w.verbose {
		writeField(sb, "ID", intern.ID)
	}

	if intern.Description != "" {
		sb.WriteString("  " + intern.Description + "\n")
	}
}

// writeField writes an indented "Label: value" line, skipping empty values.
func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("  %-9s %s\n", label+":", value))
}

// WriteTracker outputs the tracker rows. Rows whose listing is missing from
// the catalog fall back to the truncated internship id.
func (w *SimpleWriter) WriteTracker(rows []model.TrackerRow) (int, error) {
	var sb strings.Builder

	if len(rows) == 0 {
		sb.WriteString("Your tracker is empty. Save internships from search results to see them here.\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString(fmt.Sprintf("Tracking %d internships\n\n", len(rows)))

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", row.Entry.Status.Label(), row.Title()))
		if row.Internship != nil && row.Internship.Organization != "" {
			sb.WriteString("  " + row.Internship.Organization + "\n")
		}
		if row.Entry.Notes != "" {
			sb.WriteString("  Notes: " + row.Entry.Notes + "\n")
		}
		if w.verbose {
			sb.WriteString("  Entry ID: " + row.Entry.ID + "\n")
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteRecommendations outputs the AI suggestions with their match reasons.
func (w *SimpleWriter) WriteRecommendations(recs []model.Recommendation) (int, error) {
	var sb strings.Builder

	if len(recs) == 0 {
		sb.WriteString("No recommendations yet. Complete your profile to get better matches.\n")
		return w.output.Write([]byte(sb.String()))
	}

	sb.WriteString(fmt.Sprintf("Top %d matches for you\n", len(recs)))
	if w.collapsed {
		return w.output.Write([]byte(sb.String()))
	}
	sb.WriteString("\n")

	for i, rec := range recs {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rec.ProgramName))
		if rec.Company != "" {
			sb.WriteString(" - " + rec.Company)
		}
		sb.WriteString("\n")

		writeField(&sb, "Location", rec.Location)
		writeField(&sb, "URL", rec.URL)
		if rec.Description != "" {
			sb.WriteString("  " + rec.DescriptionPreview() + "\n")
		}
		if rec.AIReason != "" {
			sb.WriteString("  Why for you: " + rec.AIReason + "\n")
		}
		if i < len(recs)-1 {
			sb.WriteString("\n")
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteProfile outputs a profile summary block.
func (w *SimpleWriter) WriteProfile(profile *model.Profile) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("(%s) %s\n", profile.Initials(), profile.DisplayName()))
	writeField(&sb, "School", profile.School)
	writeField(&sb, "Grade", profile.Grade)
	writeField(&sb, "GPA", profile.GPA)
	writeField(&sb, "Email", profile.EmailPersonal)

	if tags := profile.Tags(); len(tags) > 0 {
		sb.WriteString("  Tags:     " + strings.Join(tags, ", ") + "\n")
	}

	if profile.NeedsCompletion() {
		sb.WriteString("\nYour profile is incomplete. Fill in extracurriculars, interests, GPA, and courses to improve recommendations.\n")
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteCategories outputs the category filter options. "All Categories" is
// always listed first, mirroring the default (empty) filter.
func (w *SimpleWriter) WriteCategories(categories []string) (int, error) {
	var sb strings.Builder

	sb.WriteString("All Categories\n")
	for _, c := range categories {
		sb.WriteString(c + "\n")
	}

	return w.output.Write([]byte(sb.String()))
}
