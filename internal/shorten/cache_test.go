package shorten

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenCache_RequiresPath(t *testing.T) {
	if _, err := OpenCache("  "); err == nil {
		t.Fatalf("expected error for blank path")
	}
}

func TestCache_GetMissThenPutHit(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "short.db"))
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	defer cache.Close()
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "https://example.com/a"); err != nil || ok {
		t.Fatalf("Get(miss) = ok=%v err=%v, want miss", ok, err)
	}
	if err := cache.Put(ctx, "https://example.com/a", "v.gd/a1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	short, ok, err := cache.Get(ctx, "https://example.com/a")
	if err != nil || !ok {
		t.Fatalf("Get(hit) = ok=%v err=%v", ok, err)
	}
	if short != "v.gd/a1" {
		t.Fatalf("Get() = %q, want %q", short, "v.gd/a1")
	}
}

func TestCache_PutUpserts(t *testing.T) {
	cache, err := OpenCache(filepath.Join(t.TempDir(), "short.db"))
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	defer cache.Close()
	ctx := context.Background()

	if err := cache.Put(ctx, "https://example.com/a", "v.gd/old"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.Put(ctx, "https://example.com/a", "v.gd/new"); err != nil {
		t.Fatalf("Put(update) failed: %v", err)
	}
	short, _, err := cache.Get(ctx, "https://example.com/a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if short != "v.gd/new" {
		t.Fatalf("Get() = %q, want %q", short, "v.gd/new")
	}
}

func TestCache_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.db")
	ctx := context.Background()

	cache, err := OpenCache(path)
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	if err := cache.Put(ctx, "https://example.com/a", "v.gd/a1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenCache(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()
	short, ok, err := reopened.Get(ctx, "https://example.com/a")
	if err != nil || !ok || short != "v.gd/a1" {
		t.Fatalf("Get after reopen = %q ok=%v err=%v", short, ok, err)
	}
}

func TestCache_NilReceiverIsSafe(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "https://example.com"); ok || err != nil {
		t.Fatalf("nil Get = ok=%v err=%v, want miss", ok, err)
	}
	if err := cache.Put(ctx, "https://example.com", "v.gd/x"); err != nil {
		t.Fatalf("nil Put = %v, want nil", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("nil Close = %v, want nil", err)
	}
}
