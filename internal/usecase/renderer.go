package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/naka-gawa/standups-report/internal/domain"
	"github.com/naka-gawa/standups-report/internal/gateway"
)

const (
	// DefaultIssueURLPrefix is prepended to issue ids in plain reports.
	DefaultIssueURLPrefix = "https://bugzil.la/"
	// Attribution is printed at the end of every report.
	Attribution = "This report is automatically generated by https://github.com/naka-gawa/standups-report"
)

// Renderer writes a report one author section at a time.
type Renderer interface {
	RenderAuthor(ctx context.Context, w io.Writer, report *domain.AuthorReport) error
	RenderTrailer(w io.Writer) error
}

// PlainRenderer renders the markdown-like plain text format.
type PlainRenderer struct {
	lookup    gateway.IssueLookup
	urlPrefix string
}

// NewPlainRenderer creates a PlainRenderer. An empty urlPrefix uses DefaultIssueURLPrefix.
func NewPlainRenderer(lookup gateway.IssueLookup, urlPrefix string) *PlainRenderer {
	if urlPrefix == "" {
		urlPrefix = DefaultIssueURLPrefix
	}
	return &PlainRenderer{lookup: lookup, urlPrefix: urlPrefix}
}

// RenderAuthor prints every line of the author followed by the referenced issues.
func (r *PlainRenderer) RenderAuthor(ctx context.Context, w io.Writer, report *domain.AuthorReport) error {
	if _, err := fmt.Fprintf(w, "\n## %s ##\n", report.Author); err != nil {
		return err
	}
	for _, line := range report.Lines {
		if _, err := fmt.Fprintf(w, "  * %s\n", line); err != nil {
			return err
		}
	}

	ids := DistinctIDs(report.Lines)
	if len(ids) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, id := range ids {
		detail, err := describe(ctx, r.lookup, id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  * %s%s %s\n", r.urlPrefix, detail.ID, detail.Summary); err != nil {
			return err
		}
	}
	return nil
}

// RenderTrailer prints the attribution line.
func (r *PlainRenderer) RenderTrailer(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n\n\n%s\n", Attribution)
	return err
}

// WikiRenderer renders mediawiki markup grouped by issue. Lines that mention
// no issue are not shown.
type WikiRenderer struct {
	lookup gateway.IssueLookup
}

// NewWikiRenderer creates a WikiRenderer.
func NewWikiRenderer(lookup gateway.IssueLookup) *WikiRenderer {
	return &WikiRenderer{lookup: lookup}
}

// RenderAuthor prints one bullet per issue with the mentioning lines nested below.
func (r *WikiRenderer) RenderAuthor(ctx context.Context, w io.Writer, report *domain.AuthorReport) error {
	if _, err := fmt.Fprintf(w, "\n== %s ==\n", report.Author); err != nil {
		return err
	}
	grouped := GroupByIssue(report.Lines)
	for _, id := range grouped.IDs() {
		detail, err := describe(ctx, r.lookup, id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "* {{%s}} %s\n", detail.ID, detail.Summary); err != nil {
			return err
		}
		for _, line := range grouped[id] {
			if _, err := fmt.Fprintf(w, "** %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderTrailer prints the attribution line in small text.
func (r *WikiRenderer) RenderTrailer(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n\n<small>\n%s\n</small>\n", Attribution)
	return err
}

func describe(ctx context.Context, lookup gateway.IssueLookup, id string) (domain.IssueDetail, error) {
	summary, err := lookup.Describe(ctx, id)
	if err != nil {
		return domain.IssueDetail{}, fmt.Errorf("failed to describe issue %s: %w", id, err)
	}
	return domain.IssueDetail{ID: id, Summary: summary}, nil
}
