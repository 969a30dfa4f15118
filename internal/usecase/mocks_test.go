package usecase

import (
	"context"

	"github.com/naka-gawa/standups-report/internal/domain"
	"github.com/stretchr/testify/mock"
)

// mockSource is a mock implementation of the gateway.TimelineSource interface.
type mockSource struct {
	mock.Mock
}

func (m *mockSource) FetchTimeline(ctx context.Context, query domain.TimelineQuery) ([]domain.StatusEntry, error) {
	args := m.Called(ctx, query)
	// The returned slice is nil when an error occurs.
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusEntry), args.Error(1)
}

// mockLookup is a mock implementation of the gateway.IssueLookup interface.
type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) Describe(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// mockPrefetcher is a mock implementation of the gateway.Prefetcher interface.
type mockPrefetcher struct {
	mock.Mock
}

func (m *mockPrefetcher) Prefetch(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
