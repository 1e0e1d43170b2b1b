package source

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"level_tracker_backend/internal/config"
	"level_tracker_backend/internal/model"
)

const sampleDoc = `[
  {"id": 1, "name": "Stereo Madness", "creator": "RobTop", "copies": [
    {"id": 101, "creator": "X", "status": "Approved"}
  ]},
  {"id": 2, "name": "Back On Track", "creator": "RobTop"}
]`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levels.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFileLoaderDecodesAndNormalizes(t *testing.T) {
	levels, err := NewFileLoader(writeFile(t, sampleDoc)).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(levels))
	}
	if levels[0].Copies[0].Status != model.CopyStatusApproved {
		t.Fatalf("expected lowercased status, got %q", levels[0].Copies[0].Status)
	}
	if levels[1].Copies == nil {
		t.Fatalf("expected copies defaulted to an empty list")
	}
}

func TestFileLoaderFailuresAreLoadErrors(t *testing.T) {
	cases := map[string]string{
		"missing":   filepath.Join(t.TempDir(), "nope.json"),
		"malformed": writeFile(t, `[{"id": 1,`),
		"null":      writeFile(t, `null`),
		"object":    writeFile(t, `{"id": 1}`),
		"trailing":  writeFile(t, `[{"id":1,"name":"a","creator":"b"}] garbage {`),
		"two docs":  writeFile(t, `[] []`),
	}
	for name, path := range cases {
		_, err := NewFileLoader(path).Load(context.Background())
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("%s: expected LoadError, got %v", name, err)
		}
		if !strings.Contains(loadErr.Message(), "levels.json") {
			t.Fatalf("%s: unexpected message %q", name, loadErr.Message())
		}
	}
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	levels, err := Decode(strings.NewReader("[{\"id\":1,\"name\":\"a\",\"creator\":\"b\"}]\n\n  "))
	if err != nil || len(levels) != 1 {
		t.Fatalf("expected one level, got %d %v", len(levels), err)
	}
	if _, err := Decode(strings.NewReader(`[] x`)); err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestHTTPLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cache-Control") != "no-store" {
			t.Errorf("expected no-store request, got %q", r.Header.Get("Cache-Control"))
		}
		if r.URL.Path != "/levels.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	levels, err := NewHTTPLoader(srv.URL+"/levels.json", time.Second).Load(context.Background())
	if err != nil || len(levels) != 2 {
		t.Fatalf("expected 2 levels, got %d %v", len(levels), err)
	}

	_, err = NewHTTPLoader(srv.URL+"/missing.json", time.Second).Load(context.Background())
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected LoadError with status, got %v", err)
	}
}

type countingLoader struct {
	calls int
	err   error
}

func (l *countingLoader) Load(context.Context) ([]model.Level, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return []model.Level{{ID: l.calls, Name: "n", Creator: "c", Copies: []model.Copy{}}}, nil
}

func (l *countingLoader) Describe() string { return "counting" }

func TestCachedLoaderTTL(t *testing.T) {
	next := &countingLoader{}
	cache := NewCachedLoader(next, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	first, _ := cache.Load(context.Background())
	first[0].Name = "mutated"
	second, _ := cache.Load(context.Background())
	if next.calls != 1 {
		t.Fatalf("expected one fetch inside the TTL, got %d", next.calls)
	}
	if second[0].Name != "n" {
		t.Fatalf("expected cached levels isolated from callers, got %q", second[0].Name)
	}

	now = now.Add(2 * time.Minute)
	_, _ = cache.Load(context.Background())
	if next.calls != 2 {
		t.Fatalf("expected refetch after TTL, got %d", next.calls)
	}

	cache.Clear()
	_, _ = cache.Load(context.Background())
	if next.calls != 3 {
		t.Fatalf("expected refetch after Clear, got %d", next.calls)
	}
}

func TestCachedLoaderDoesNotCacheErrors(t *testing.T) {
	next := &countingLoader{err: errors.New("boom")}
	cache := NewCachedLoader(next, time.Minute)
	_, _ = cache.Load(context.Background())
	_, _ = cache.Load(context.Background())
	if next.calls != 2 {
		t.Fatalf("expected every failed load retried, got %d", next.calls)
	}
}

func TestEncodeIsPrettyPrinted(t *testing.T) {
	var buf bytes.Buffer
	levels := []model.Level{{ID: 1, Name: "A & B", Creator: "c", Copies: []model.Copy{}}}
	if err := Encode(&buf, levels); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := "[\n  {\n    \"id\": 1,\n    \"name\": \"A & B\",\n    \"creator\": \"c\",\n    \"copies\": []\n  }\n]\n"
	if buf.String() != want {
		t.Fatalf("unexpected export:\n%s", buf.String())
	}

	buf.Reset()
	_ = Encode(&buf, nil)
	if buf.String() != "[]\n" {
		t.Fatalf("expected empty array, got %q", buf.String())
	}

	decoded, err := Decode(strings.NewReader(want))
	if err != nil || decoded[0].Name != "A & B" {
		t.Fatalf("expected export to decode back, got %v %v", decoded, err)
	}
}

func TestFactory(t *testing.T) {
	loader, err := New(&config.SourceConfig{Type: "file", Path: "levels.json"})
	if err != nil || loader.Describe() != "file:levels.json" {
		t.Fatalf("expected file loader, got %v %v", loader, err)
	}
	loader, err = New(&config.SourceConfig{Type: "http", URL: "http://example.com/levels.json"})
	if err != nil || loader.Describe() != "http:http://example.com/levels.json" {
		t.Fatalf("expected http loader, got %v %v", loader, err)
	}
	loader, err = New(&config.SourceConfig{Type: "minio", MinioEndpoint: "localhost:9000", MinioBucket: "catalog", ObjectKey: "levels.json"})
	if err != nil || loader.Describe() != "minio:catalog/levels.json" {
		t.Fatalf("expected minio loader, got %v %v", loader, err)
	}
	if _, err := New(&config.SourceConfig{Type: "ftp"}); err == nil {
		t.Fatalf("expected unknown type error")
	}
}
