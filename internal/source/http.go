package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"level_tracker_backend/internal/model"
)

// HTTPLoader fetches the document from a static URL, bypassing caches.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

func NewHTTPLoader(url string, timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (l *HTTPLoader) Load(ctx context.Context) ([]model.Level, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Source: l.Describe(), Err: fmt.Errorf("failed to load levels: %d", resp.StatusCode)}
	}
	levels, err := Decode(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	return levels, nil
}

func (l *HTTPLoader) Describe() string {
	return "http:" + l.URL
}
