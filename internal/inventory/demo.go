// Package inventory supplies item lists for the wardrobe driver: the
// built-in demonstration items, or items read from a YAML or JSONL file.
package inventory

import "github.com/mesh-intelligence/wardrobe/pkg/types"

// Demo returns fresh copies of the five demonstration items, one of each
// clothing type, in their insertion order.
func Demo() []*types.Item {
	return []*types.Item{
		types.MustItem("T-Shirt", "Casual wear", types.WithSize("M"), types.WithType(types.Shirt)),
		types.MustItem("Jeans", "Slim fit", types.WithSize("32"), types.WithType(types.Jeans)),
		types.MustItem("Jacket", "Winter coat", types.WithSize("L"), types.WithType(types.Jacket)),
		types.MustItem("Running Shoes", "Sportswear", types.WithSize("9"), types.WithType(types.Shoes)),
		types.MustItem("Ankle Socks", "Comfortable", types.WithSize("1 Size"), types.WithType(types.Socks)),
	}
}
