package wardrobe

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/wardrobe/internal/memory"
	"github.com/mesh-intelligence/wardrobe/internal/sqlite"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// NewBackend creates a detached backend for config.Backend. A nil logger
// discards log output.
func NewBackend(config types.Config, logger *slog.Logger) (types.Wardrobe, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	switch config.Backend {
	case types.BackendSQLite:
		return sqlite.NewBackend(sqlite.WithLogger(logger)), nil
	default:
		return memory.NewBackend(memory.WithLogger(logger)), nil
	}
}

// Open creates a backend and attaches it. The caller must Detach.
func Open(config types.Config, logger *slog.Logger) (types.Wardrobe, error) {
	w, err := NewBackend(config, logger)
	if err != nil {
		return nil, err
	}
	if err := w.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}
	return w, nil
}
