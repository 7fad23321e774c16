package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want a miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "labels:a"); hit {
		t.Fatal("empty cache should miss")
	}
	if err := c.Set(ctx, "labels:a", []byte("%PDF-1.3"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "labels:a")
	if err != nil || !hit || !bytes.Equal(data, []byte("%PDF-1.3")) {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "labels:a"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "labels:a"); hit {
		t.Error("deleted entry should miss")
	}
	if err := c.Delete(ctx, "labels:a"); err != nil {
		t.Errorf("deleting a missing entry: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want a clean miss", hit, err)
	}
}

func TestKey(t *testing.T) {
	k1, err := Key("labels", "3x6", map[string]string{"b": "2", "a": "1"})
	if err != nil {
		t.Fatal(err)
	}
	k2, _ := Key("labels", "3x6", map[string]string{"a": "1", "b": "2"})
	k3, _ := Key("labels", "2x8", map[string]string{"a": "1", "b": "2"})

	if k1 != k2 {
		t.Error("equal inputs should give equal keys")
	}
	if k1 == k3 {
		t.Error("different inputs should give different keys")
	}
	if !strings.HasPrefix(k1, "labels:") || len(k1) != len("labels:")+64 {
		t.Errorf("key = %q", k1)
	}
	if _, err := Key("labels", func() {}); err == nil {
		t.Error("unencodable parts should fail")
	}
}

func TestHash(t *testing.T) {
	if Hash([]byte("hello")) != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if Hash([]byte("hello")) == Hash([]byte("world")) {
		t.Error("different inputs should give different hashes")
	}
	if n := len(Hash([]byte("hello"))); n != 64 {
		t.Errorf("Hash length = %d, want 64", n)
	}
}
