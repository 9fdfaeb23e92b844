// Package memory implements the slice-backed Wardrobe backend. It is the
// default backend and keeps everything in process memory.
package memory

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Compile-time interface check.
var _ types.Wardrobe = (*Backend)(nil)

// Backend implements types.Wardrobe over an ordered slice of items.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	items    []*types.Item
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Backend) {
		b.logger = logger
	}
}

// NewBackend creates a new memory backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach initializes an empty wardrobe.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	b.config = config
	b.items = nil
	b.attached = true
	b.logger.Debug("wardrobe attached", "backend", config.Backend)
	return nil
}

// Detach drops all items. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	b.items = nil
	b.logger.Debug("wardrobe detached", "backend", b.config.Backend)
	return nil
}

// Add appends copies of items in argument order.
func (b *Backend) Add(items ...*types.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrWardrobeDetached
	}
	if err := types.ValidateItems(items); err != nil {
		return err
	}

	now := b.now().UTC()
	for _, it := range items {
		cp := it.Clone()
		if cp.ItemID == "" {
			cp.ItemID = types.NewItemID()
		}
		if cp.AddedAt.IsZero() {
			cp.AddedAt = now
		}
		b.items = append(b.items, cp)
	}
	b.logger.Debug("items added", "count", len(items), "total", len(b.items))
	return nil
}

// SortBySize stably sorts items by raw size string. Sizes are compared
// byte by byte, so "32" sorts before "9".
func (b *Backend) SortBySize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrWardrobeDetached
	}
	slices.SortStableFunc(b.items, func(x, y *types.Item) int {
		return strings.Compare(x.Size, y.Size)
	})
	b.logger.Debug("items sorted by size", "total", len(b.items))
	return nil
}

// Items returns copies of the items in current order.
func (b *Backend) Items() ([]*types.Item, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrWardrobeDetached
	}
	out := make([]*types.Item, 0, len(b.items))
	for _, it := range b.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

// CheckReadiness counts distinct type keys; unset items share one key.
func (b *Backend) CheckReadiness() (types.Readiness, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Readiness{}, types.ErrWardrobeDetached
	}
	seen := make(map[string]struct{}, len(types.ClothingTypes)+1)
	for _, it := range b.items {
		seen[it.TypeKey()] = struct{}{}
	}
	return types.NewReadiness(len(seen)), nil
}
