package types

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidItem is returned when a nil item is handed to a wardrobe.
var ErrInvalidItem = errors.New("invalid item")

// Item is a single piece of clothing. Items are treated as immutable once
// constructed; wardrobes hand out copies.
type Item struct {
	// ItemID is a UUID v7 assigned when the item is first added to a
	// wardrobe. It never affects ordering or readiness.
	ItemID string `json:"item_id,omitempty" yaml:"item_id,omitempty"`

	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Size is free-form ("M", "32", "1 Size") and compared as a raw string.
	Size string `json:"size" yaml:"size"`

	// Type is nil when the clothing type is unset.
	Type *ClothingType `json:"type" yaml:"type"`

	AddedAt time.Time `json:"added_at,omitzero" yaml:"added_at,omitempty"`
}

// ItemOption configures optional fields in NewItem.
type ItemOption func(*Item)

// WithSize sets the item size. The default is the empty string.
func WithSize(size string) ItemOption {
	return func(it *Item) {
		it.Size = size
	}
}

// WithType sets the clothing type. Without it the type is unset.
func WithType(c ClothingType) ItemOption {
	return func(it *Item) {
		it.Type = c.Ptr()
	}
}

// NewItem builds an item. It returns ErrInvalidClothingType if a type
// outside the closed set was supplied.
func NewItem(name, description string, opts ...ItemOption) (*Item, error) {
	it := &Item{Name: name, Description: description}
	for _, opt := range opts {
		opt(it)
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return it, nil
}

// Validate checks that the item is non-nil and that its type, when set, is
// in the closed set.
func (it *Item) Validate() error {
	if it == nil {
		return ErrInvalidItem
	}
	if it.Type != nil && !it.Type.IsValid() {
		return fmt.Errorf("item %q: %w: %q", it.Name, ErrInvalidClothingType, string(*it.Type))
	}
	return nil
}

// ValidateItems validates every item, stopping at the first failure.
func ValidateItems(items []*Item) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MustItem is like NewItem but panics on error. Intended for fixed item
// lists known to be valid.
func MustItem(name, description string, opts ...ItemOption) *Item {
	it, err := NewItem(name, description, opts...)
	if err != nil {
		panic(err)
	}
	return it
}

// DisplayLine formats the item as "{name} ({size}) - {description}".
func (it *Item) DisplayLine() string {
	return fmt.Sprintf("%s (%s) - %s", it.Name, it.Size, it.Description)
}

// Display writes the display line followed by a newline.
func (it *Item) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, it.DisplayLine())
	return err
}

// IsFormal reports whether the item is a shirt or a jacket. An unset type
// is not formal.
func (it *Item) IsFormal() bool {
	if it.Type == nil {
		return false
	}
	return it.Type.IsFormal()
}

// HasType reports whether the item's type is set and equal to c.
func (it *Item) HasType(c ClothingType) bool {
	return it.Type != nil && *it.Type == c
}

// TypeKey returns the type label, or the empty string when unset. Unset
// items share one key, so it can be used to count distinct types.
func (it *Item) TypeKey() string {
	if it.Type == nil {
		return ""
	}
	return string(*it.Type)
}

// Clone returns a deep copy of the item.
func (it *Item) Clone() *Item {
	cp := *it
	if it.Type != nil {
		cp.Type = it.Type.Ptr()
	}
	return &cp
}

// NewItemID generates a UUID v7 for an item.
func NewItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
