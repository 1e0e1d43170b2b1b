// Package source loads the levels document the catalog is built from.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"level_tracker_backend/internal/model"
)

// Loader fetches and parses the catalog document.
type Loader interface {
	Load(ctx context.Context) ([]model.Level, error)
	// Describe names the source for logs, e.g. "file:levels.json".
	Describe() string
}

// LoadError wraps any fetch or parse failure. It is never fatal: the caller
// keeps an empty catalog and shows Message.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading levels data from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Message is the user-facing text shown when no catalog could be loaded.
func (e *LoadError) Message() string {
	return "Error loading levels data. Please check that levels.json exists and is valid."
}

// Decode parses a JSON array of levels and normalizes each one.
func Decode(r io.Reader) ([]model.Level, error) {
	var levels []model.Level
	dec := json.NewDecoder(r)
	if err := dec.Decode(&levels); err != nil {
		return nil, fmt.Errorf("decode levels: %w", err)
	}
	if levels == nil {
		return nil, fmt.Errorf("decode levels: document is not a JSON array")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("decode levels: trailing data after array")
	}
	for i := range levels {
		levels[i].Normalize()
	}
	return levels, nil
}

// Encode writes levels as the pretty-printed export document.
func Encode(w io.Writer, levels []model.Level) error {
	if levels == nil {
		levels = []model.Level{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(levels)
}
