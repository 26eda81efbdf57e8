package model

import (
	"strings"

	"golang.org/x/net/html"
)

// placeholderContact is a dummy contact address present in imported catalog
// rows. It carries no information and is treated as an absent field.
const placeholderContact = "contact@example.com"

// sentinels are literal strings the catalog uses to mean "field absent".
// The source data was assembled from CSV imports where missing cells became
// the string "nan"; manual entries use "Unknown" or "N/A".
// Comparison is case-insensitive.
var sentinels = map[string]bool{
	"nan":     true,
	"n/a":     true,
	"unknown": true,
	"none":    true,
	"null":    true,
}

// Internship is a single catalog listing. All fields are read-only from the
// client's perspective; only admins create listings.
//
// The backend serializes the listing URL under the key "Url" (capital U).
// That quirk is preserved here so the wire format round-trips unchanged.
type Internship struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	URL          string `json:"Url"`
	Contact      string `json:"contact"`
	Deadline     string `json:"deadline"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	CreatorID    string `json:"creatorId,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// Normalize maps sentinel placeholder values to the empty string and strips
// HTML markup from the description. It is called once when a listing enters
// the client (API decode or cache read); renderers afterwards only test for
// emptiness.
func (i *Internship) Normalize() {
	i.Name = CleanField(i.Name)
	i.Organization = CleanField(i.Organization)
	i.URL = CleanField(i.URL)
	i.Contact = CleanField(i.Contact)
	i.Deadline = CleanField(i.Deadline)
	i.Category = CleanField(i.Category)
	i.Location = CleanField(i.Location)
	i.Description = StripHTML(CleanField(i.Description))

	if strings.EqualFold(i.Contact, placeholderContact) {
		i.Contact = ""
	}
}

// NormalizeAll normalizes every listing in the slice in place and returns it.
func NormalizeAll(internships []Internship) []Internship {
	for idx := range internships {
		internships[idx].Normalize()
	}
	return internships
}

// CleanField trims whitespace and converts sentinel placeholders to the
// empty string.
func CleanField(value string) string {
	value = strings.TrimSpace(value)
	if sentinels[strings.ToLower(value)] {
		return ""
	}
	return value
}

// StripHTML removes markup from a string, keeping only text content.
// Catalog descriptions originate from scraped feeds and occasionally carry
// tags or entities; terminal output must not show them.
//
// Design decision: We use golang.org/x/net/html tokenization rather than a
// regexp because the tokenizer handles malformed markup, entities, and
// script/style content correctly.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}
		}
	}
}

// Categories returns the distinct non-empty categories present in the
// listings, in order of first appearance. The renderer prepends the
// "All Categories" option when building filter choices.
func Categories(internships []Internship) []string {
	seen := make(map[string]bool, len(internships))
	var categories []string
	for _, i := range internships {
		c := CleanField(i.Category)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}
	return categories
}

// TruncatedID returns the first 8 characters of an internship id, used as a
// display fallback when a tracker entry references a listing that is no
// longer in the catalog.
func TruncatedID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
