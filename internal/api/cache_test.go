package api

import "testing"

func TestCachePutGet(t *testing.T) {
	cache, err := NewCache(1 << 20)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	if _, ok := cache.Get(DirectionLatin, "текст"); ok {
		t.Error("expected miss on empty cache")
	}

	cache.Put(DirectionLatin, "текст", "tekst")
	cache.Wait()

	got, ok := cache.Get(DirectionLatin, "текст")
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got != "tekst" {
		t.Errorf("Get = %q, want %q", got, "tekst")
	}
}

func TestCacheKeySeparatesDirections(t *testing.T) {
	cache, err := NewCache(1 << 20)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	cache.Put(DirectionLatin, "nj", "њ-latin")
	cache.Wait()

	if _, ok := cache.Get(DirectionCyrillic, "nj"); ok {
		t.Error("cache entry leaked across directions")
	}
}

func TestCacheKeyDistinct(t *testing.T) {
	// Direction and text are separated in the key material, so a
	// direction suffix must not collide with a text prefix.
	a := cacheKey("latin", "x")
	b := cacheKey("latinx", "")
	if a == b {
		t.Error("cache keys collide for different direction/text splits")
	}
}
