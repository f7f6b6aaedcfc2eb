package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCacheHelper(client, "test:"), mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCacheHelper_SetGet(t *testing.T) {
	ctx := context.Background()
	helper, _ := newTestHelper(t)

	want := payload{Name: "grade-10", Count: 3}
	if err := helper.Set(ctx, "roundtrip", want, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "roundtrip", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestCacheHelper_GetMiss(t *testing.T) {
	ctx := context.Background()
	helper, _ := newTestHelper(t)

	var got payload
	if err := helper.Get(ctx, "missing", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound, got %v", err)
	}
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	ctx := context.Background()
	helper, mr := newTestHelper(t)

	keys := []string{"list:page1", "list:page2", "id:42"}
	for _, key := range keys {
		if err := helper.Set(ctx, key, payload{Name: key}, time.Minute); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	if err := helper.InvalidatePattern(ctx, "list:*"); err != nil {
		t.Fatalf("InvalidatePattern failed: %v", err)
	}

	if mr.Exists("test:list:page1") || mr.Exists("test:list:page2") {
		t.Error("Expected list keys to be removed")
	}
	if !mr.Exists("test:id:42") {
		t.Error("Expected id key to survive")
	}
}

func TestCacheHelper_NilClient(t *testing.T) {
	ctx := context.Background()
	helper := NewCacheHelper(nil, "test:")

	var got payload
	if err := helper.Get(ctx, "anything", &got); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Expected ErrCacheNotAvailable, got %v", err)
	}
	if err := helper.Set(ctx, "anything", payload{}, time.Minute); err != nil {
		t.Errorf("Set with nil client should be a no-op, got %v", err)
	}
	if err := helper.Delete(ctx, "anything"); err != nil {
		t.Errorf("Delete with nil client should be a no-op, got %v", err)
	}
	if err := helper.InvalidatePattern(ctx, "list:*"); err != nil {
		t.Errorf("InvalidatePattern with nil client should be a no-op, got %v", err)
	}
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches on miss", func(t *testing.T) {
		helper, _ := newTestHelper(t)

		calls := 0
		var got payload
		err := helper.CacheOrExecute(ctx, "overview", &got, time.Minute, func() (interface{}, error) {
			calls++
			return payload{Name: "fresh", Count: 1}, nil
		})
		if err != nil {
			t.Fatalf("CacheOrExecute failed: %v", err)
		}
		if calls != 1 {
			t.Errorf("Expected 1 fetch, got %d", calls)
		}
		if got.Name != "fresh" {
			t.Errorf("Expected fetched payload, got %+v", got)
		}
	})

	t.Run("serves from cache", func(t *testing.T) {
		helper, _ := newTestHelper(t)

		if err := helper.Set(ctx, "overview", payload{Name: "cached", Count: 2}, time.Minute); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		var got payload
		err := helper.CacheOrExecute(ctx, "overview", &got, time.Minute, func() (interface{}, error) {
			t.Fatal("Fetch must not run on a cache hit")
			return nil, nil
		})
		if err != nil {
			t.Fatalf("CacheOrExecute failed: %v", err)
		}
		if got.Name != "cached" {
			t.Errorf("Expected cached payload, got %+v", got)
		}
	})

	t.Run("degrades without a client", func(t *testing.T) {
		helper := NewCacheHelper(nil, "test:")

		var got payload
		err := helper.CacheOrExecute(ctx, "overview", &got, time.Minute, func() (interface{}, error) {
			return payload{Name: "direct"}, nil
		})
		if err != nil {
			t.Fatalf("CacheOrExecute failed: %v", err)
		}
		if got.Name != "direct" {
			t.Errorf("Expected direct payload, got %+v", got)
		}
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		helper, _ := newTestHelper(t)

		fetchErr := errors.New("database down")
		var got payload
		err := helper.CacheOrExecute(ctx, "overview", &got, time.Minute, func() (interface{}, error) {
			return nil, fetchErr
		})
		if !errors.Is(err, fetchErr) {
			t.Errorf("Expected wrapped fetch error, got %v", err)
		}
	})
}

func TestCacheManager_InvalidateTimetable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	manager := NewCacheManager(client)

	if err := manager.Timetable.Set(ctx, "grade:10", payload{Name: "10"}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := manager.Timetable.Set(ctx, "grade:11", payload{Name: "11"}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := manager.Timetable.Set(ctx, "grades:all", payload{Name: "all"}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := manager.InvalidateTimetable(ctx, "10"); err != nil {
		t.Fatalf("InvalidateTimetable failed: %v", err)
	}

	if mr.Exists("timetable:grade:10") {
		t.Error("Expected grade 10 cache to be removed")
	}
	if mr.Exists("timetable:grades:all") {
		t.Error("Expected grade listing cache to be removed")
	}
	if !mr.Exists("timetable:grade:11") {
		t.Error("Expected grade 11 cache to survive")
	}
}
