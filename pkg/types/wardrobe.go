package types

import "errors"

// ReadyThreshold is the number of distinct clothing types a wardrobe must
// exceed to be ready to go out.
const ReadyThreshold = 3

// Readiness is the result of a readiness check.
type Readiness struct {
	// TypeCount is the number of distinct clothing types, with unset
	// counted as one value.
	TypeCount int  `json:"type_count"`
	Ready     bool `json:"ready"`
}

// NewReadiness derives the verdict from a distinct type count.
func NewReadiness(typeCount int) Readiness {
	return Readiness{TypeCount: typeCount, Ready: typeCount > ReadyThreshold}
}

// Wardrobe defines the interface every backend implements. Callers attach to
// a backend, manipulate the ordered item collection, and detach when done.
type Wardrobe interface {
	// Attach prepares the backend described by config. Returns
	// ErrAlreadyAttached if called while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach, other
	// operations return ErrWardrobeDetached.
	Detach() error

	// Add appends items in argument order. Items without an ItemID get a
	// UUID v7. Nothing is added if any item is nil (ErrInvalidItem) or
	// carries a type outside the closed set (ErrInvalidClothingType).
	Add(items ...*Item) error

	// SortBySize reorders items in place by ascending raw size string. The
	// sort is stable and permanent.
	SortBySize() error

	// Items returns copies of the items in current order. The slice is
	// empty, not nil, when the wardrobe is empty.
	Items() ([]*Item, error)

	// CheckReadiness counts distinct clothing types and applies the
	// ReadyThreshold.
	CheckReadiness() (Readiness, error)
}

// Wardrobe lifecycle errors.
var (
	ErrWardrobeDetached = errors.New("wardrobe is detached")
	ErrAlreadyAttached  = errors.New("wardrobe is already attached")
)
