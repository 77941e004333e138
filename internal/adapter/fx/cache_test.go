package fx

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCacheReturnsEntryWithinTTL(t *testing.T) {
	cache := NewCache(15 * time.Minute)
	cache.Set("USD_NGN", decimal.NewFromInt(1600))

	rate, ok := cache.Get("USD_NGN")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !rate.Equal(decimal.NewFromInt(1600)) {
		t.Fatalf("expected rate 1600, got %s", rate.String())
	}
}

func TestCacheExpiresEntryAfterTTL(t *testing.T) {
	current := time.Now()
	cache := NewCache(15 * time.Minute)
	cache.now = func() time.Time { return current }

	cache.Set("USD_EUR", decimal.NewFromFloat(0.85))

	current = current.Add(14 * time.Minute)
	if _, ok := cache.Get("USD_EUR"); !ok {
		t.Fatal("expected hit before the ttl elapsed")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := cache.Get("USD_EUR"); ok {
		t.Fatal("expected miss after the ttl elapsed")
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	cache := NewCache(time.Minute)

	if _, ok := cache.Get("USD_JPY"); ok {
		t.Fatal("expected miss for a key that was never set")
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache(time.Minute)
	cache.Set("GBP_USD", decimal.NewFromFloat(1.33))
	cache.Clear()

	if _, ok := cache.Get("GBP_USD"); ok {
		t.Fatal("expected miss after clear")
	}
}
