package model

import (
	"strings"
	"unicode"
)

// maxProfileTags caps the number of tags shown in the profile summary.
const maxProfileTags = 8

// Profile is the student profile attached to an account. All fields are
// free-form strings as stored by the backend; the three CSV fields
// (Extracurriculars, Interests, Courses) feed the tag list in the profile
// summary.
type Profile struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	School           string `json:"school"`
	EmailPersonal    string `json:"email_personal"`
	Age              string `json:"age"`
	Grade            string `json:"grade"`
	Extracurriculars string `json:"extracurriculars"`
	Interests        string `json:"interests"`
	GPA              string `json:"gpa"`
	Courses          string `json:"courses"`
}

// DisplayName returns "First Last" with missing parts omitted, falling back
// to "Student" when both are blank.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" {
		return "Student"
	}
	return name
}

// Initials returns the avatar initials derived from the first and last name,
// uppercased. When both names are blank it falls back to "S".
func (p *Profile) Initials() string {
	var sb strings.Builder
	for _, name := range []string{p.FirstName, p.LastName} {
		for _, r := range strings.TrimSpace(name) {
			sb.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	if sb.Len() == 0 {
		return "S"
	}
	return sb.String()
}

// Tags returns up to 8 tags combined from extracurriculars, interests, and
// courses, in that order. Each CSV field is split on commas with blanks
// dropped.
func (p *Profile) Tags() []string {
	var tags []string
	for _, csv := range []string{p.Extracurriculars, p.Interests, p.Courses} {
		tags = append(tags, SplitCSV(csv)...)
	}
	if len(tags) > maxProfileTags {
		tags = tags[:maxProfileTags]
	}
	return tags
}

// NeedsCompletion reports whether required profile fields are still blank.
// A fresh account has empty extracurriculars/interests/gpa/courses; the UI
// forces the profile editor open until they are filled.
func (p *Profile) NeedsCompletion() bool {
	return strings.TrimSpace(p.Extracurriculars) == "" ||
		strings.TrimSpace(p.Interests) == "" ||
		strings.TrimSpace(p.GPA) == "" ||
		strings.TrimSpace(p.Courses) == ""
}

// SplitCSV splits a comma-separated field into trimmed, non-empty parts.
func SplitCSV(csv string) []string {
	var parts []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
