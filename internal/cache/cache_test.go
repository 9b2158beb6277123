package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"surf-booking/internal/data/entity"
)

func testSlots(n int) []entity.Slot {
	slots := make([]entity.Slot, n)
	for i := range slots {
		slots[i] = entity.Slot{
			SlotID:     "slot-" + string(rune('a'+i)),
			Price:      decimal.NewFromInt(90),
			OpenSpaces: 4,
			Available:  true,
		}
	}
	return slots
}

func newTestCache() *AvailabilityCache {
	return NewAvailabilityCache(zap.NewNop())
}

func TestGetPut(t *testing.T) {
	c := newTestCache()
	key := Key("Sunset Point", "2026-07-04")

	_, ok := c.Get(key)
	assert.False(t, ok, "miss expected on empty cache")

	c.Put(key, testSlots(2), time.Minute)

	slots, ok := c.Get(key)
	require.True(t, ok)
	assert.Len(t, slots, 2)
}

func TestGet_ExpiredEntryIsAbsent(t *testing.T) {
	c := newTestCache()
	key := Key("Sunset Point", "2026-07-04")

	now := time.Now()
	c.now = func() time.Time { return now }
	c.Put(key, testSlots(1), time.Minute)

	// Advance the clock past the TTL without sweeping.
	c.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, ok := c.Get(key)
	assert.False(t, ok)

	total, valid := c.Stats()
	assert.Equal(t, 1, total, "entry still physically present")
	assert.Equal(t, 0, valid)
}

func TestGetOrRefresh_ServesCachedWithoutFetching(t *testing.T) {
	c := newTestCache()
	key := Key("Rockaway", "2026-07-04")
	c.Put(key, testSlots(3), time.Minute)

	slots, err := c.GetOrRefresh(context.Background(), key, time.Minute, func(context.Context) ([]entity.Slot, error) {
		t.Fatal("fetch must not run for a valid entry")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestGetOrRefresh_SingleFlight(t *testing.T) {
	c := newTestCache()
	key := Key("Rockaway", "2026-07-04")

	var fetches atomic.Int32
	release := make(chan struct{})
	fetch := func(context.Context) ([]entity.Slot, error) {
		fetches.Add(1)
		<-release
		return testSlots(2), nil
	}

	const callers = 20
	var wg sync.WaitGroup
	results := make([][]entity.Slot, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.GetOrRefresh(context.Background(), key, time.Minute, fetch)
		}(i)
	}

	// Give every goroutine a chance to join the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), fetches.Load(), "exactly one upstream fetch")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Len(t, results[i], 2)
	}
}

func TestGetOrRefresh_FailureNotCached(t *testing.T) {
	c := newTestCache()
	key := Key("Rockaway", "2026-07-04")

	boom := errors.New("provider down")
	calls := 0

	_, err := c.GetOrRefresh(context.Background(), key, time.Minute, func(context.Context) ([]entity.Slot, error) {
		calls++
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	_, ok := c.Get(key)
	assert.False(t, ok, "failed fetch must not poison the cache")

	// The next caller retries and can succeed.
	slots, err := c.GetOrRefresh(context.Background(), key, time.Minute, func(context.Context) ([]entity.Slot, error) {
		calls++
		return testSlots(1), nil
	})
	require.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, 2, calls)
}

func TestGetOrRefresh_FailureOnOneKeyLeavesOthersIntact(t *testing.T) {
	c := newTestCache()
	good := Key("Rockaway", "2026-07-04")
	bad := Key("Sunset Point", "2026-07-04")

	c.Put(good, testSlots(2), time.Minute)

	_, err := c.GetOrRefresh(context.Background(), bad, time.Minute, func(context.Context) ([]entity.Slot, error) {
		return nil, errors.New("timeout")
	})
	require.Error(t, err)

	slots, ok := c.Get(good)
	require.True(t, ok)
	assert.Len(t, slots, 2)
}

func TestInvalidate(t *testing.T) {
	c := newTestCache()
	key := Key("Rockaway", "2026-07-04")
	c.Put(key, testSlots(1), time.Minute)

	c.Invalidate(key)

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	c := newTestCache()
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Put("fresh", testSlots(1), time.Hour)
	c.Put("stale-1", testSlots(1), time.Minute)
	c.Put("stale-2", testSlots(1), time.Minute)

	c.now = func() time.Time { return now.Add(10 * time.Minute) }

	assert.Equal(t, 2, c.Sweep())

	total, valid := c.Stats()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, valid)
}
