package source

import (
	"fmt"
	"time"

	"level_tracker_backend/internal/config"
	"level_tracker_backend/internal/util"
)

// New builds the loader selected by cfg.Type.
func New(cfg *config.SourceConfig) (Loader, error) {
	switch cfg.Type {
	case util.SourceFile, "":
		return NewFileLoader(cfg.Path), nil
	case util.SourceHTTP:
		return NewHTTPLoader(cfg.URL, time.Duration(cfg.TimeoutSeconds)*time.Second), nil
	case util.SourceMinio:
		return NewMinioLoader(cfg)
	case util.SourceOSS:
		return NewOSSLoader(cfg)
	}
	return nil, fmt.Errorf("unknown source type %q", cfg.Type)
}
