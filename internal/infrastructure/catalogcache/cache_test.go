package catalogcache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"modelscout/catalog-api/internal/domain/catalog"
	"modelscout/catalog-api/internal/utils/platformerrors"
)

type fakeFetcher struct {
	mu     sync.Mutex
	calls  int32
	models []catalog.Model
	err    error
	delay  time.Duration
}

func (f *fakeFetcher) ListModels(ctx context.Context) ([]catalog.Model, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.models, nil
}

func (f *fakeFetcher) Source() string { return "fake" }

func (f *fakeFetcher) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeFetcher) callCount() int32 { return atomic.LoadInt32(&f.calls) }

func someModels() []catalog.Model {
	return []catalog.Model{{ID: "openai/gpt-4o", Name: "GPT-4o", ContextLength: 128000}}
}

func TestGetSnapshotPopulatesOnFirstCall(t *testing.T) {
	fetcher := &fakeFetcher{models: someModels()}
	cache := NewCache(fetcher, time.Minute)

	snapshot, err := cache.GetSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Models, 1)
	require.Equal(t, "fake", snapshot.Source)
	require.False(t, snapshot.FetchedAt.IsZero())
	require.EqualValues(t, 1, fetcher.callCount())
}

func TestGetSnapshotServesFreshWithoutRefetch(t *testing.T) {
	fetcher := &fakeFetcher{models: someModels()}
	cache := NewCache(fetcher, time.Minute)

	_, err := cache.GetSnapshot(context.Background())
	require.NoError(t, err)
	_, err = cache.GetSnapshot(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, fetcher.callCount(), "fresh snapshot must not refetch")
}

func TestGetSnapshotRefreshesAfterTTL(t *testing.T) {
	fetcher := &fakeFetcher{models: someModels()}
	cache := NewCache(fetcher, time.Minute)

	_, err := cache.GetSnapshot(context.Background())
	require.NoError(t, err)

	// Move the clock past the TTL.
	cache.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = cache.GetSnapshot(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, fetcher.callCount())
}

func TestFailedRefreshFallsBackToStaleSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{models: someModels()}
	cache := NewCache(fetcher, time.Minute)

	_, err := cache.GetSnapshot(context.Background())
	require.NoError(t, err)

	fetcher.setError(errors.New("upstream down"))
	cache.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	snapshot, err := cache.GetSnapshot(context.Background())
	require.NoError(t, err, "stale snapshot must be served when refresh fails")
	require.Len(t, snapshot.Models, 1)
}

func TestFailedFirstFetchPropagatesExternalError(t *testing.T) {
	fetcher := &fakeFetcher{err: platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, "boom", nil, "")}
	cache := NewCache(fetcher, time.Minute)

	_, err := cache.GetSnapshot(context.Background())
	require.Error(t, err)
	require.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
}

func TestConcurrentStaleReadersShareOneFetch(t *testing.T) {
	fetcher := &fakeFetcher{models: someModels(), delay: 50 * time.Millisecond}
	cache := NewCache(fetcher, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.GetSnapshot(context.Background())
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.EqualValues(t, 1, fetcher.callCount(), "concurrent cold readers must share a single upstream fetch")
}

func TestInvalidateForcesRefresh(t *testing.T) {
	fetcher := &fakeFetcher{models: someModels()}
	cache := NewCache(fetcher, time.Hour)

	_, err := cache.GetSnapshot(context.Background())
	require.NoError(t, err)

	cache.Invalidate()
	_, err = cache.GetSnapshot(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, fetcher.callCount())
}
