package source

import (
	"context"
	"os"

	"level_tracker_backend/internal/model"
)

type FileLoader struct {
	Path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

func (l *FileLoader) Load(ctx context.Context) ([]model.Level, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	defer f.Close()

	levels, err := Decode(f)
	if err != nil {
		return nil, &LoadError{Source: l.Describe(), Err: err}
	}
	return levels, nil
}

func (l *FileLoader) Describe() string {
	return "file:" + l.Path
}
