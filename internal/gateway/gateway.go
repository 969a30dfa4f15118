// Package gateway provides access to the external services the report is
// built from: the standups timeline and the issue trackers.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/naka-gawa/standups-report/internal/domain"
)

const userAgent = "standups-report/1.0"

// TimelineSource fetches the status entries selected by a query.
type TimelineSource interface {
	FetchTimeline(ctx context.Context, query domain.TimelineQuery) ([]domain.StatusEntry, error)
}

// IssueLookup returns a short description for an issue id.
type IssueLookup interface {
	Describe(ctx context.Context, id string) (string, error)
}

// Prefetcher resolves a batch of issue ids ahead of rendering.
type Prefetcher interface {
	Prefetch(ctx context.Context, ids []string) error
}

// NewHTTPClient returns the client shared by the plain REST gateways.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
