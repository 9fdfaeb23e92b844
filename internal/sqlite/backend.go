// Package sqlite implements a Wardrobe backend that uses an in-memory
// SQLite database as its query engine. Nothing is written to disk; the
// database is created on Attach and discarded on Detach.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// dsn opens a private in-memory database. The pool is pinned to a single
// connection, since every new connection would see an empty database.
const dsn = "file::memory:"

// Compile-time interface check.
var _ types.Wardrobe = (*Backend)(nil)

// Backend implements types.Wardrobe on top of SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
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

// NewBackend creates a new SQLite backend instance.
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

// Attach opens the in-memory database and creates the schema.
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

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.attached = true
	b.logger.Debug("wardrobe attached", "backend", config.Backend)
	return nil
}

// Detach closes the database, discarding all items. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.logger.Debug("wardrobe detached", "backend", b.config.Backend)
	return nil
}

// Add inserts items after the current last position, in argument order.
func (b *Backend) Add(items ...*types.Item) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrWardrobeDetached
	}
	if err := types.ValidateItems(items); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var pos int64
	if err := tx.QueryRow(queryNextPosition).Scan(&pos); err != nil {
		return fmt.Errorf("reading last position: %w", err)
	}

	now := b.now().UTC()
	for _, it := range items {
		pos++
		id := it.ItemID
		if id == "" {
			id = types.NewItemID()
		}
		addedAt := it.AddedAt
		if addedAt.IsZero() {
			addedAt = now
		}
		var ct sql.NullString
		if it.Type != nil {
			ct = sql.NullString{String: string(*it.Type), Valid: true}
		}
		_, err := tx.Exec(insertItem,
			id, pos, it.Name, it.Description, it.Size, ct, addedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("inserting item %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing items: %w", err)
	}
	b.logger.Debug("items added", "count", len(items), "total", pos)
	return nil
}

// SortBySize renumbers positions by ascending size, keeping the previous
// order among equal sizes.
func (b *Backend) SortBySize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrWardrobeDetached
	}
	rowIDs, err := b.rowsBySize()
	if err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i, rowID := range rowIDs {
		if _, err := tx.Exec(updatePosition, i+1, rowID); err != nil {
			return fmt.Errorf("updating position: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sort: %w", err)
	}
	b.logger.Debug("items sorted by size", "total", len(rowIDs))
	return nil
}

// rowsBySize returns row IDs in size order. The caller must hold b.mu.
func (b *Backend) rowsBySize() ([]int64, error) {
	rows, err := b.db.Query(selectRowsBySize)
	if err != nil {
		return nil, fmt.Errorf("querying sort order: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning row id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sort order: %w", err)
	}
	return ids, nil
}

// Items hydrates every row, ordered by position.
func (b *Backend) Items() ([]*types.Item, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrWardrobeDetached
	}

	rows, err := b.db.Query(selectItems)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []*types.Item{}
	for rows.Next() {
		it, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// CheckReadiness counts distinct clothing types, NULL included.
func (b *Backend) CheckReadiness() (types.Readiness, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Readiness{}, types.ErrWardrobeDetached
	}
	var n int
	if err := b.db.QueryRow(countDistinctTypes).Scan(&n); err != nil {
		return types.Readiness{}, fmt.Errorf("counting clothing types: %w", err)
	}
	return types.NewReadiness(n), nil
}

// hydrateItem converts the current row into a *types.Item.
func hydrateItem(rows *sql.Rows) (*types.Item, error) {
	var it types.Item
	var ct sql.NullString
	var addedAt string
	if err := rows.Scan(&it.ItemID, &it.Name, &it.Description, &it.Size, &ct, &addedAt); err != nil {
		return nil, err
	}
	if ct.Valid {
		c, err := types.ParseClothingType(ct.String)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", it.ItemID, err)
		}
		it.Type = &c
	}
	t, err := time.Parse(time.RFC3339Nano, addedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing added_at: %w", err)
	}
	it.AddedAt = t
	return &it, nil
}
