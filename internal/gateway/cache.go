package gateway

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CachingLookup memoizes another IssueLookup for the lifetime of one run.
// Failed lookups are not cached.
type CachingLookup struct {
	next        IssueLookup
	concurrency int
	logger      *log.Logger

	mu        sync.Mutex
	summaries map[string]string
}

// NewCachingLookup wraps next. concurrency bounds Prefetch; values below 1 mean 1.
func NewCachingLookup(next IssueLookup, concurrency int, logger *log.Logger) *CachingLookup {
	if concurrency < 1 {
		concurrency = 1
	}
	return &CachingLookup{
		next:        next,
		concurrency: concurrency,
		logger:      logger,
		summaries:   make(map[string]string),
	}
}

// Describe returns the cached summary or asks the wrapped lookup.
func (c *CachingLookup) Describe(ctx context.Context, id string) (string, error) {
	if summary, ok := c.cached(id); ok {
		return summary, nil
	}
	summary, err := c.next.Describe(ctx, id)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.summaries[id] = summary
	c.mu.Unlock()
	return summary, nil
}

// Prefetch resolves every id not yet cached. The first failure cancels the rest.
func (c *CachingLookup) Prefetch(ctx context.Context, ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.concurrency)
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := c.cached(id); ok {
			continue
		}
		id := id
		eg.Go(func() error {
			_, err := c.Describe(egCtx, id)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	c.logger.Printf("Prefetched %d issue summaries.\n", len(seen))
	return nil
}

func (c *CachingLookup) cached(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	summary, ok := c.summaries[id]
	return summary, ok
}
