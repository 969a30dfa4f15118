package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/standups-report/internal/domain"
)

// Summarize computes report statistics for logging.
func Summarize(reports []*domain.AuthorReport) domain.ReportSummary {
	summary := domain.ReportSummary{Authors: len(reports)}
	if len(reports) == 0 {
		return summary
	}

	counts := make(stats.Float64Data, 0, len(reports))
	issues := make(map[string]struct{})
	for _, report := range reports {
		summary.Lines += len(report.Lines)
		counts = append(counts, float64(len(report.Lines)))
		for _, id := range domain.ExtractReferences(report.Lines) {
			issues[id] = struct{}{}
		}
	}
	summary.Issues = len(issues)
	// Errors only occur for empty input, which is handled above.
	summary.MeanLinesPerAuthor, _ = counts.Mean()
	summary.MedianLinesPerAuthor, _ = counts.Median()
	return summary
}
