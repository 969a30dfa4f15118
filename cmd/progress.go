package cmd

import (
	"context"
	"os"
	"time"

	"github.com/naka-gawa/standups-report/internal/domain"
	"github.com/naka-gawa/standups-report/internal/gateway"
	"github.com/schollz/progressbar/v3"
)

// spinnerSource shows a spinner on stderr while the timeline is fetched.
type spinnerSource struct {
	next gateway.TimelineSource
}

func (s *spinnerSource) FetchTimeline(ctx context.Context, query domain.TimelineQuery) ([]domain.StatusEntry, error) {
	bar := newSpinner("Fetching timeline")
	defer clearBar(bar)
	return s.next.FetchTimeline(ctx, query)
}

// spinnerPrefetcher shows a spinner on stderr while issue summaries are resolved.
type spinnerPrefetcher struct {
	next gateway.Prefetcher
}

func (s *spinnerPrefetcher) Prefetch(ctx context.Context, ids []string) error {
	bar := newSpinner("Looking up bugs")
	defer clearBar(bar)
	return s.next.Prefetch(ctx, ids)
}

func newSpinner(description string) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(15),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	_ = bar.RenderBlank()
	return bar
}

func clearBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
		_ = bar.Clear()
	}
}
