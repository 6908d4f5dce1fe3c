package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func testStore() *Store {
	return NewStore(zerolog.Nop())
}

func TestGet_CachesValue(t *testing.T) {
	s := testStore()
	key := Key{Category: CategoryOrders}
	var calls int32
	fetch := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "orders-v1", nil
	}

	for i := 0; i < 3; i++ {
		v, err := s.Get(context.Background(), key, fetch)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if v != "orders-v1" {
			t.Fatalf("unexpected value: %v", v)
		}
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected 1 fetch, got %d", n)
	}
}

func TestInvalidate_ForcesRefetch(t *testing.T) {
	s := testStore()
	key := Key{Category: CategoryOrders}
	var calls int32
	fetch := func(context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	if _, err := s.Get(context.Background(), key, fetch); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	s.Invalidate(CategoryOrders)

	v, err := s.Get(context.Background(), key, fetch)
	if err != nil {
		t.Fatalf("get after invalidate failed: %v", err)
	}
	if v != int32(2) {
		t.Fatalf("expected fresh fetch after invalidate, got %v", v)
	}
}

func TestInvalidate_OtherCategoryUntouched(t *testing.T) {
	s := testStore()
	key := Key{Category: CategoryClients}
	var calls int32
	fetch := func(context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	_, _ = s.Get(context.Background(), key, fetch)
	s.Invalidate(CategoryOrders)
	_, _ = s.Get(context.Background(), key, fetch)

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("clients entry refetched after orders invalidation: %d calls", n)
	}
}

func TestGet_ConcurrentCallsShareOneFetch(t *testing.T) {
	s := testStore()
	key := Key{Category: CategoryOrders}

	var calls int32
	release := make(chan struct{})
	fetch := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]any, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.Get(context.Background(), key, fetch)
			if err != nil {
				t.Errorf("get failed: %v", err)
				return
			}
			results[i] = v
		}(i)
	}

	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected exactly 1 network call for concurrent gets, got %d", n)
	}
	for i, v := range results {
		if v != "shared" {
			t.Fatalf("reader %d saw %v", i, v)
		}
	}
}

func TestGet_ErrorNotCached(t *testing.T) {
	s := testStore()
	key := Key{Category: CategoryAnalytics}
	fail := errors.New("backend down")

	var calls int32
	fetch := func(context.Context) (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, fail
		}
		return "recovered", nil
	}

	if _, err := s.Get(context.Background(), key, fetch); !errors.Is(err, fail) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if err := s.Err(key); !errors.Is(err, fail) {
		t.Fatalf("expected error stored on entry, got %v", err)
	}

	// Manual retry: re-invocation of Get refetches.
	v, err := s.Get(context.Background(), key, fetch)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if v != "recovered" {
		t.Fatalf("unexpected retry value: %v", v)
	}
}

func TestGet_StaleResponseDiscarded(t *testing.T) {
	s := testStore()
	key := Key{Category: CategoryOrders}

	started := make(chan struct{})
	release := make(chan struct{})
	slowFetch := func(context.Context) (any, error) {
		close(started)
		<-release
		return "stale", nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		// The caller still receives its response; it just must not be
		// written into the entry.
		if v, err := s.Get(context.Background(), key, slowFetch); err != nil || v != "stale" {
			t.Errorf("in-flight caller got (%v, %v)", v, err)
		}
	}()

	<-started
	s.Invalidate(CategoryOrders)
	close(release)
	<-done

	if _, ok := s.Peek(key); ok {
		t.Fatalf("stale response was applied to an invalidated entry")
	}

	fresh := func(context.Context) (any, error) { return "fresh", nil }
	v, err := s.Get(context.Background(), key, fresh)
	if err != nil {
		t.Fatalf("get after stale drop failed: %v", err)
	}
	if v != "fresh" {
		t.Fatalf("expected refetched value, got %v", v)
	}
}

func TestGetAs_TypeMismatch(t *testing.T) {
	s := testStore()
	key := Key{Category: CategoryOrders}
	if _, err := s.Get(context.Background(), key, func(context.Context) (any, error) { return 42, nil }); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err := GetAs(context.Background(), s, key, func(context.Context) (string, error) { return "", nil })
	if err == nil {
		t.Fatalf("expected type mismatch error")
	}
}
