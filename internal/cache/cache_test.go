package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key("2026.1", "cascadia", "the ritual text")
	b := Key("2026.1", "cascadia", "the ritual text")
	if a != b {
		t.Errorf("identical inputs produced different keys: %q vs %q", a, b)
	}

	if a == Key("2026.1", "cascadia", "other text") {
		t.Error("different content must produce a different key")
	}
	if a == Key("2026.1", "other-region", "the ritual text") {
		t.Error("different bioregion must produce a different key")
	}
	if a == Key("2026.2", "cascadia", "the ritual text") {
		t.Error("different lexicon version must produce a different key")
	}

	if !strings.HasPrefix(a, "harmonia:2026.1:") {
		t.Errorf("key %q missing version prefix", a)
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "value" {
		t.Errorf("Get = %q, %v; want value, true", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	key := Key("2026.1", "b", "content")
	if err := c.Set(key, []byte("report"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, found := c.Get(key)
	if !found || string(val) != "report" {
		t.Errorf("Get = %q, %v; want report, true", val, found)
	}

	// An expired entry is evicted on read.
	if err := c.Set("expired", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("expired"); found {
		t.Error("expected expired entry to miss")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("expected miss after clear")
	}
}

func TestDiskCache_LexiconVersionIsolation(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	// An entry persisted under one lexicon version must never be served
	// for another: the version prefix is part of the on-disk identity.
	oldKey := Key("2026.1", "cascadia", "the ritual text")
	if err := c.Set(oldKey, []byte("stale-result"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	newKey := Key("2026.2", "cascadia", "the ritual text")
	if val, found := c.Get(newKey); found {
		t.Errorf("new-version key served stale entry: %q", val)
	}

	if val, found := c.Get(oldKey); !found || string(val) != "stale-result" {
		t.Errorf("old-version key Get = %q, %v; want stale-result, true", val, found)
	}
}

func TestLayeredCache_RoundTrip(t *testing.T) {
	c := NewLayeredCache(time.Minute, t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Get = %q, %v; want v, true", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestLayeredCache_DiskPromotion(t *testing.T) {
	dir := t.TempDir()

	// Seed the disk layer directly, then read through a fresh layered
	// cache whose memory layer is empty.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("persisted"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	c := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found := c.Get("k")
	if !found || string(val) != "persisted" {
		t.Errorf("Get = %q, %v; want persisted, true", val, found)
	}
}
