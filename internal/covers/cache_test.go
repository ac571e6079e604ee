package covers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestNewCache(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "covers")

	cache, err := NewCache(cacheDir)
	if err != nil {
		t.Fatalf("NewCache failed: %v", err)
	}
	if cache.CacheDir() != cacheDir {
		t.Errorf("expected cache dir %s, got %s", cacheDir, cache.CacheDir())
	}
	if _, err := os.Stat(cacheDir); os.IsNotExist(err) {
		t.Error("cache directory was not created")
	}
}

func TestGetCover_EmptyURL(t *testing.T) {
	cache, _ := NewCache(t.TempDir())

	path, err := cache.GetCover(context.Background(), 1, "")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty path for empty URL, got %s", path)
	}
}

func TestGetCover_FetchesOnce(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("fake image data"))
	}))
	defer server.Close()

	cache, _ := NewCache(t.TempDir())
	url := server.URL + "/photo-1544947950-fa07a98d237f"

	path1, err := cache.GetCover(context.Background(), 1, url)
	if err != nil {
		t.Fatalf("GetCover failed: %v", err)
	}
	data, err := os.ReadFile(path1)
	if err != nil {
		t.Fatalf("failed to read cached file: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("unexpected cached content: %q", data)
	}

	path2, err := cache.GetCover(context.Background(), 1, url)
	if err != nil {
		t.Fatalf("second GetCover failed: %v", err)
	}
	if path1 != path2 {
		t.Errorf("expected same path, got %s and %s", path1, path2)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 request, got %d", got)
	}
}

func TestGetCover_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cache, _ := NewCache(t.TempDir())

	if _, err := cache.GetCover(context.Background(), 1, server.URL+"/missing.jpg"); err == nil {
		t.Error("expected error for 404 response")
	}

	entries, _ := os.ReadDir(cache.CacheDir())
	if len(entries) != 0 {
		t.Errorf("expected no files left behind, found %d", len(entries))
	}
}

func TestInvalidateCover(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("img"))
	}))
	defer server.Close()

	cache, _ := NewCache(t.TempDir())
	ctx := context.Background()

	path1, _ := cache.GetCover(ctx, 1, server.URL+"/a.jpg")
	path12, _ := cache.GetCover(ctx, 12, server.URL+"/b.jpg")

	if err := cache.InvalidateCover(1); err != nil {
		t.Fatalf("InvalidateCover failed: %v", err)
	}
	if _, err := os.Stat(path1); !os.IsNotExist(err) {
		t.Error("expected cover for book 1 to be removed")
	}
	if _, err := os.Stat(path12); err != nil {
		t.Error("cover for book 12 should survive")
	}
}
