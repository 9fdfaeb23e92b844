package types

import (
	"errors"
	"strings"
)

// ClothingType is the category label attached to an item of clothing.
type ClothingType string

// Clothing types. The set is closed.
const (
	Shirt  ClothingType = "shirt"
	Jeans  ClothingType = "jeans"
	Jacket ClothingType = "jacket"
	Shoes  ClothingType = "shoes"
	Socks  ClothingType = "socks"
)

// ClothingTypes lists every clothing type in declaration order.
var ClothingTypes = []ClothingType{Shirt, Jeans, Jacket, Shoes, Socks}

// ErrInvalidClothingType is returned for a value outside the closed set.
var ErrInvalidClothingType = errors.New("invalid clothing type")

// String implements fmt.Stringer.
func (c ClothingType) String() string {
	return string(c)
}

// IsValid reports whether c is one of the defined clothing types.
func (c ClothingType) IsValid() bool {
	switch c {
	case Shirt, Jeans, Jacket, Shoes, Socks:
		return true
	default:
		return false
	}
}

// IsFormal reports whether the type counts as formal wear: shirts and
// jackets.
func (c ClothingType) IsFormal() bool {
	return c == Shirt || c == Jacket
}

// Ptr returns a pointer to a copy of c, for use as an optional item type.
func (c ClothingType) Ptr() *ClothingType {
	return &c
}

// ParseClothingType converts a label such as "shirt" or "SHIRT" to a
// ClothingType. Surrounding whitespace is ignored.
func ParseClothingType(s string) (ClothingType, error) {
	c := ClothingType(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidClothingType
	}
	return c, nil
}
