package render

import (
	"encoding/json"
	"io"

	"github.com/nao1215/internhunt/internal/model"
)

// JSONWriter outputs results in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteInternships outputs the listings as a JSON array.
// Empty slices marshal as [] rather than null so consumers can always
// iterate the result.
func (w *JSONWriter) WriteInternships(internships []model.Internship) (int, error) {
	if internships == nil {
		internships = []model.Internship{}
	}
	return w.writeJSON(internships)
}

// WriteTracker outputs the tracker rows as a JSON array.
func (w *JSONWriter) WriteTracker(rows []model.TrackerRow) (int, error) {
	if rows == nil {
		rows = []model.TrackerRow{}
	}
	return w.writeJSON(rows)
}

// WriteRecommendations outputs the suggestions as a JSON array.
func (w *JSONWriter) WriteRecommendations(recs []model.Recommendation) (int, error) {
	if recs == nil {
		recs = []model.Recommendation{}
	}
	return w.writeJSON(recs)
}

// WriteProfile outputs the profile as a JSON object.
func (w *JSONWriter) WriteProfile(profile *model.Profile) (int, error) {
	return w.writeJSON(profile)
}

// WriteCategories outputs the category filters as a JSON array.
func (w *JSONWriter) WriteCategories(categories []string) (int, error) {
	if categories == nil {
		categories = []string{}
	}
	return w.writeJSON(categories)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v interface{}) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
