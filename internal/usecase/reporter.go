package usecase

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/naka-gawa/standups-report/internal/domain"
	"github.com/naka-gawa/standups-report/internal/gateway"
)

// Reporter is the use case for generating a standups report.
// It fetches the timeline, aggregates it and streams the rendered sections.
type Reporter struct {
	source     gateway.TimelineSource
	renderer   Renderer
	prefetcher gateway.Prefetcher
	logger     *log.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(source gateway.TimelineSource, renderer Renderer, logger *log.Logger) *Reporter {
	return &Reporter{
		source:   source,
		renderer: renderer,
		logger:   logger,
	}
}

// WithPrefetcher makes Run resolve all referenced issues before rendering.
func (r *Reporter) WithPrefetcher(p gateway.Prefetcher) *Reporter {
	r.prefetcher = p
	return r
}

// Run writes the report for query to w. The first failure aborts the run;
// sections already written stay in w.
func (r *Reporter) Run(ctx context.Context, w io.Writer, query domain.TimelineQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}
	r.logger.Println("Usecase: Fetching timeline...")
	entries, err := r.source.FetchTimeline(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to fetch timeline: %w", err)
	}

	reports := Aggregate(entries)
	summary := Summarize(reports)
	r.logger.Printf("Usecase: %d authors, %d lines, %d issues (mean %.1f, median %.1f lines per author).\n",
		summary.Authors, summary.Lines, summary.Issues, summary.MeanLinesPerAuthor, summary.MedianLinesPerAuthor)

	if r.prefetcher != nil {
		var ids []string
		for _, report := range reports {
			ids = append(ids, DistinctIDs(report.Lines)...)
		}
		if err := r.prefetcher.Prefetch(ctx, ids); err != nil {
			return fmt.Errorf("failed to prefetch issues: %w", err)
		}
	}

	for _, report := range reports {
		if err := r.renderer.RenderAuthor(ctx, w, report); err != nil {
			return fmt.Errorf("failed to render section for %s: %w", report.Author, err)
		}
	}
	if err := r.renderer.RenderTrailer(w); err != nil {
		return fmt.Errorf("failed to write trailer: %w", err)
	}
	r.logger.Println("Usecase: Report complete.")
	return nil
}
