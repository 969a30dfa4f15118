// Package usecase contains the business logic of the application.
package usecase

import (
	"sort"

	"github.com/naka-gawa/standups-report/internal/domain"
)

// Aggregate groups status entries by author and normalizes their content.
// Each report's lines are deduplicated and sorted; reports are sorted by author
// for consistent output.
func Aggregate(entries []domain.StatusEntry) []*domain.AuthorReport {
	linesByAuthor := make(map[string]map[string]struct{})
	for _, entry := range entries {
		set, ok := linesByAuthor[entry.Author]
		if !ok {
			set = make(map[string]struct{})
			linesByAuthor[entry.Author] = set
		}
		set[domain.Normalize(entry.Content)] = struct{}{}
	}

	reports := make([]*domain.AuthorReport, 0, len(linesByAuthor))
	for author, set := range linesByAuthor {
		lines := make([]string, 0, len(set))
		for line := range set {
			lines = append(lines, line)
		}
		sort.Strings(lines)
		reports = append(reports, &domain.AuthorReport{Author: author, Lines: lines})
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Author < reports[j].Author
	})
	return reports
}

// GroupByIssue maps every issue id mentioned in lines to the lines mentioning it.
// A line appears once under an id however often it repeats that id.
func GroupByIssue(lines []string) domain.IssueLines {
	grouped := make(domain.IssueLines)
	for _, line := range lines {
		seen := make(map[string]struct{})
		for _, id := range domain.ExtractIDs(line) {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			grouped[id] = append(grouped[id], line)
		}
	}
	return grouped
}

// DistinctIDs returns the issue ids referenced by lines, deduplicated and
// sorted as strings.
func DistinctIDs(lines []string) []string {
	ids := domain.ExtractReferences(lines)
	sort.Strings(ids)
	return compact(ids)
}

func compact(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
