package render

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/internhunt/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteInternships outputs the listings as a Markdown table.
func (w *MarkdownWriter) WriteInternships(internships []model.Internship) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Internship Search Results")
	md.PlainText("")

	if len(internships) == 0 {
		md.Note("No internships found. Try a different search.")
		return len(md.String()), md.Build()
	}

	md.PlainTextf("%d internships found", len(internships))
	md.PlainText("")

	rows := make([][]string, 0, len(internships))
	for _, intern := range internships {
		name := intern.Name
		if intern.URL != "" {
			name = "[" + intern.Name + "](" + intern.URL + ")"
		}
		rows = append(rows, []string{
			name,
			intern.Organization,
			intern.Category,
			intern.Location,
			intern.Deadline,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Organization", "Category", "Location", "Deadline"},
		Rows:   rows,
	})
	md.PlainText("")

	// Full descriptions follow the table; the table stays scannable.
	for _, intern := range internships {
		if intern.Description == "" {
			continue
		}
		md.H2(intern.Name)
		md.PlainText(intern.Description)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteTracker outputs the tracker rows as a Markdown table with a status
// distribution chart.
func (w *MarkdownWriter) WriteTracker(trackerRows []model.TrackerRow) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Internship Tracker")
	md.PlainText("")

	if len(trackerRows) == 0 {
		md.Note("Your tracker is empty. Save internships from search results to see them here.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, 0, len(trackerRows))
	for _, row := range trackerRows {
		org := ""
		if row.Internship != nil {
			org = row.Internship.Organization
		}
		rows = append(rows, []string{
			row.Title(),
			org,
			row.Entry.Status.Label(),
			row.Entry.Notes,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Internship", "Organization", "Status", "Notes"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeStatusChart(md, trackerRows)

	return len(md.String()), md.Build()
}

// writeStatusChart writes a mermaid pie chart of the status distribution.
func (w *MarkdownWriter) writeStatusChart(md *markdown.Markdown, rows []model.TrackerRow) {
	counts := make(map[model.Status]int)
	for _, row := range rows {
		counts[row.Entry.Status]++
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Application Status Distribution"),
		piechart.WithShowData(true),
	)
	for _, status := range model.Statuses() {
		if counts[status] > 0 {
			chart.LabelAndIntValue(status.Label(), uint64(counts[status]))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WriteRecommendations outputs the AI suggestions with their match reasons.
func (w *MarkdownWriter) WriteRecommendations(recs []model.Recommendation) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Recommended Internships")
	md.PlainText("")

	if len(recs) == 0 {
		md.Note("No recommendations yet. Complete your profile to get better matches.")
		return len(md.String()), md.Build()
	}

	md.PlainTextf("Top %d matches for you", len(recs))
	md.PlainText("")

	for i, rec := range recs {
		title := strconv.Itoa(i+1) + ". " + rec.ProgramName
		if rec.Company != "" {
			title += " - " + rec.Company
		}
		md.H2(title)

		if rec.Location != "" {
			md.PlainText("Location: " + rec.Location)
		}
		if rec.URL != "" {
			md.PlainText("[Apply](" + rec.URL + ")")
		}
		if rec.Description != "" {
			md.PlainText(rec.DescriptionPreview())
		}
		if rec.AIReason != "" {
			md.Tip("Why for you: " + rec.AIReason)
		}
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteProfile outputs the profile summary as a Markdown table.
func (w *MarkdownWriter) WriteProfile(profile *model.Profile) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(profile.DisplayName())
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"School", profile.School},
			{"Grade", profile.Grade},
			{"GPA", profile.GPA},
			{"Email", profile.EmailPersonal},
			{"Interests", profile.Interests},
			{"Extracurriculars", profile.Extracurriculars},
			{"Courses", profile.Courses},
		},
	})
	md.PlainText("")

	if profile.NeedsCompletion() {
		md.Warningf("Your profile is incomplete. Fill in extracurriculars, interests, GPA, and courses to improve recommendations.")
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteCategories outputs the category filters as a Markdown list.
func (w *MarkdownWriter) WriteCategories(categories []string) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Categories")
	md.PlainText("")

	items := append([]string{"All Categories"}, categories...)
	md.BulletList(items...)
	md.PlainText("")

	return len(md.String()), md.Build()
}
