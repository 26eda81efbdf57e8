package render

import (
	"io"

	"github.com/nao1215/internhunt/internal/model"
)

// Writer defines the interface for rendering client output.
// Implementations write the same data in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WriteInternships outputs a list of internship listings.
	// Returns the number of bytes written and any error encountered.
	WriteInternships(internships []model.Internship) (int, error)

	// WriteTracker outputs the user's tracker rows.
	WriteTracker(rows []model.TrackerRow) (int, error)

	// WriteRecommendations outputs AI-generated suggestions.
	WriteRecommendations(recs []model.Recommendation) (int, error)

	// WriteProfile outputs a profile summary.
	WriteProfile(profile *model.Profile) (int, error)

	// WriteCategories outputs the available category filters.
	WriteCategories(categories []string) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write structured results, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteInternships outputs the listings to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteInternships(internships []model.Internship) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteInternships(internships) })
}

// WriteTracker outputs the tracker rows to all configured Writers.
func (m *MultiWriter) WriteTracker(rows []model.TrackerRow) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteTracker(rows) })
}

// WriteRecommendations outputs the suggestions to all configured Writers.
func (m *MultiWriter) WriteRecommendations(recs []model.Recommendation) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteRecommendations(recs) })
}

// WriteProfile outputs the profile summary to all configured Writers.
func (m *MultiWriter) WriteProfile(profile *model.Profile) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteProfile(profile) })
}

// WriteCategories outputs the category filters to all configured Writers.
func (m *MultiWriter) WriteCategories(categories []string) (int, error) {
	return m.each(func(w Writer) (int, error) { return w.WriteCategories(categories) })
}

// each runs fn against every writer, accumulating the byte count.
func (m *MultiWriter) each(fn func(Writer) (int, error)) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := fn(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for output writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
