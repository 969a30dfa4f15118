// Package domain contains the core data structures and domain logic for the application.
package domain

import "sort"

// StatusEntry is a single status update posted by a user.
type StatusEntry struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// AuthorReport holds the normalized, deduplicated and sorted lines of one author.
// It is the unit handed to a renderer.
type AuthorReport struct {
	Author string   `json:"author"`
	Lines  []string `json:"lines"`
}

// IssueDetail is the one-line description of a referenced issue.
type IssueDetail struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

// IssueLines maps an issue id to the normalized lines mentioning it.
type IssueLines map[string][]string

// IDs returns the issue ids in lexicographic order.
func (il IssueLines) IDs() []string {
	ids := make([]string, 0, len(il))
	for id := range il {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ReportSummary holds statistics about a generated report.
type ReportSummary struct {
	Authors              int     `json:"authors"`
	Lines                int     `json:"lines"`
	Issues               int     `json:"issues"`
	MeanLinesPerAuthor   float64 `json:"mean_lines_per_author"`
	MedianLinesPerAuthor float64 `json:"median_lines_per_author"`
}
